package ecs

import "log"

// EntityFactory 创建一个供对象池预分配的实体
type EntityFactory func(em *EntityManager) EntityID

// EntityPool 固定大小的实体对象池
//
// 所有实体在创建对象池时一次性分配，闲置实体处于停用状态，
// Acquire 启用一个闲置实体，Release 停用并归还。
// 对象池不会扩容：耗尽时 Acquire 返回 false。
type EntityPool struct {
	em      *EntityManager
	free    []EntityID        // 闲置实体栈
	inUse   map[EntityID]bool // 正在使用的实体
	members map[EntityID]bool // 属于本池的全部实体
	size    int
}

// NewEntityPool 创建对象池并预分配 size 个实体
//
// 参数:
//   - em: EntityManager 实例
//   - size: 池大小（小于 1 时按 1 处理）
//   - factory: 实体构造函数，返回的实体会被立即停用
func NewEntityPool(em *EntityManager, size int, factory EntityFactory) *EntityPool {
	if size < 1 {
		size = 1
	}
	pool := &EntityPool{
		em:      em,
		free:    make([]EntityID, 0, size),
		inUse:   make(map[EntityID]bool, size),
		members: make(map[EntityID]bool, size),
		size:    size,
	}
	for i := 0; i < size; i++ {
		id := factory(em)
		em.SetActive(id, false)
		pool.members[id] = true
		pool.free = append(pool.free, id)
	}
	return pool
}

// Acquire 取出一个闲置实体并启用
// 对象池耗尽时返回 (0, false)
func (p *EntityPool) Acquire() (EntityID, bool) {
	if len(p.free) == 0 {
		return 0, false
	}
	id := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.inUse[id] = true
	p.em.SetActive(id, true)
	return id, true
}

// Release 停用实体并归还到对象池
// 实体未被使用（重复归还或不属于本池）时不做任何修改并返回 false
func (p *EntityPool) Release(id EntityID) bool {
	if !p.inUse[id] {
		if !p.members[id] {
			log.Printf("[EntityPool] Warning: entity %d does not belong to this pool", id)
		}
		return false
	}
	delete(p.inUse, id)
	p.em.SetActive(id, false)
	p.free = append(p.free, id)
	return true
}

// IsInUse 检查实体当前是否已被取出
func (p *EntityPool) IsInUse(id EntityID) bool {
	return p.inUse[id]
}

// Size 返回对象池的固定容量
func (p *EntityPool) Size() int {
	return p.size
}

// InUse 返回当前已取出的实体数量
func (p *EntityPool) InUse() int {
	return len(p.inUse)
}

// Available 返回当前闲置的实体数量
func (p *EntityPool) Available() int {
	return len(p.free)
}
