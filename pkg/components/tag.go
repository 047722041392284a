package components

// 常用实体标签
// 标签用于粗粒度查询（"所有敌人"、"所有投射物"），
// 精确行为仍由具体组件决定
const (
	TagPlayer     = "player"
	TagEnemy      = "enemy"
	TagProjectile = "projectile"
	TagPickup     = "pickup"
	TagAreaEffect = "area_effect"
)

// TagComponent 实体的字符串标签集合
type TagComponent struct {
	Tags map[string]bool // 标签集合
}

// NewTagComponent 创建带初始标签的标签组件
func NewTagComponent(tags ...string) *TagComponent {
	c := &TagComponent{Tags: make(map[string]bool, len(tags))}
	for _, tag := range tags {
		c.Tags[tag] = true
	}
	return c
}

// Has 检查是否拥有指定标签
func (c *TagComponent) Has(tag string) bool {
	if c == nil || c.Tags == nil {
		return false
	}
	return c.Tags[tag]
}
