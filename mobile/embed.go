//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// data/lost_packet.yaml 需与项目根目录的同名文件保持一致。
package mobile

import "embed"

//go:embed data/lost_packet.yaml
var dataFS embed.FS
