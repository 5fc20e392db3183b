package app

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/gonewx/lostpacket/pkg/systems"
)

func TestCollectionLogger(t *testing.T) {
	var buf bytes.Buffer
	listener := newCollectionLogger(log.New(&buf, "", 0))

	listener(systems.CollectionEvent{
		Entity:     7,
		X:          1.5,
		Z:          -2,
		Factor:     0.125,
		StoredBits: 2500,
		Reward:     312.5,
	})

	out := buf.String()
	for _, want := range []string{"[Collection]", "Packet 7", "(1.5, -2.0)", "+312 bits", "factor 0.125", "stored 2.5K"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}
