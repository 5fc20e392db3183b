package physics

import (
	"math"

	"github.com/gonewx/lostpacket/pkg/components"
	"github.com/gonewx/lostpacket/pkg/ecs"
)

// RaycastHit 射线命中信息
type RaycastHit struct {
	Entity   ecs.EntityID
	Point    Vec3
	Distance float64
}

// Raycast 对所有启用的球形碰撞体做射线检测，返回最近的命中
//
// 参数:
//   - em: EntityManager 实例（停用的实体不会参与检测）
//   - ray: 射线，方向无需归一化
//   - maxDistance: 最大检测距离
func Raycast(em *ecs.EntityManager, ray Ray, maxDistance float64) (RaycastHit, bool) {
	ray.Direction = ray.Direction.Normalize()
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	colliders := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.SphereColliderComponent,
	](em)

	for _, id := range colliders {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		sphere, _ := ecs.GetComponent[*components.SphereColliderComponent](em, id)

		center := Vec3{pos.X, pos.Y, pos.Z}
		t, ok := raycastSphere(ray, center, sphere.Radius, maxDistance)
		if !ok {
			continue
		}
		// 距离相同时取 ID 较小者，保证结果与查询顺序无关
		if t < closest.Distance || (hit && t == closest.Distance && id < closest.Entity) {
			closest = RaycastHit{Entity: id, Point: ray.PointAt(t), Distance: t}
			hit = true
		}
	}

	return closest, hit
}

// RaycastTagged 射线检测最近的命中，并判断其标签是否为 tag
// 与引擎的 "Raycast + CompareTag" 一致：被其他物体遮挡时返回 false
func RaycastTagged(em *ecs.EntityManager, ray Ray, maxDistance float64, tag string) (RaycastHit, bool) {
	hit, ok := Raycast(em, ray, maxDistance)
	if !ok {
		return RaycastHit{}, false
	}
	tagComp, ok := ecs.GetComponent[*components.TagComponent](em, hit.Entity)
	if !ok || tagComp.Name != tag {
		return RaycastHit{}, false
	}
	return hit, true
}

// raycastSphere 计算归一化射线与球体的最近交点距离
func raycastSphere(ray Ray, center Vec3, radius, maxDistance float64) (float64, bool) {
	oc := ray.Origin.Sub(center)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := (-b - sqrtD) / 2
	if t < 0 {
		// 起点在球内时取远端交点
		t = (-b + sqrtD) / 2
	}
	if t < 0 || t > maxDistance {
		return 0, false
	}
	return t, true
}
