package systems

import (
	"testing"

	"github.com/soulwax/darkmoon-sub000/pkg/components"
	"github.com/soulwax/darkmoon-sub000/pkg/ecs"
	"github.com/soulwax/darkmoon-sub000/pkg/events"
)

// TestContactDamageAbsorbedByShield 护盾足够时伤害全部被吸收
func TestContactDamageAbsorbedByShield(t *testing.T) {
	em, queue, tuning := newTestWorld()
	playerID := spawnTestPlayer(em, tuning, 100, 100)
	spawnTestEnemy(em, tuning, 110, 100, 30) // 半径和 26 > 距离 10，重叠

	s := NewContactDamageSystem(em, queue, tuning, newTestWeaponTables(), newTestRNG())
	s.Update(0.016)

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, playerID)

	// 敌伤 10，护盾 30 -> 20，生命不动
	if player.Shield != 20 {
		t.Errorf("Expected shield 20, got %v", player.Shield)
	}
	if health.CurrentHealth != tuning.Player.MaxHealth {
		t.Errorf("Health should be untouched, got %d", health.CurrentHealth)
	}
	// 护盾吸收不开无敌窗口
	if health.Invulnerable {
		t.Error("Full shield absorption must not trigger i-frames")
	}
}

// TestContactDamageShieldOverflow 护盾不足时溢出部分扣血并开无敌窗口
func TestContactDamageShieldOverflow(t *testing.T) {
	em, queue, tuning := newTestWorld()
	playerID := spawnTestPlayer(em, tuning, 100, 100)
	spawnTestEnemy(em, tuning, 110, 100, 30)

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	player.Shield = 4

	s := NewContactDamageSystem(em, queue, tuning, newTestWeaponTables(), newTestRNG())
	s.Update(0.016)

	health, _ := ecs.GetComponent[*components.HealthComponent](em, playerID)
	if player.Shield != 0 {
		t.Errorf("Expected shield drained to 0, got %v", player.Shield)
	}
	if health.CurrentHealth != 94 {
		t.Errorf("Expected health 94 (overflow 6), got %d", health.CurrentHealth)
	}
	if !health.Invulnerable {
		t.Error("Health damage should open the i-frame window")
	}
}

// TestContactCooldownsPreventStacking 双重冷却防止怪群叠伤
//
// 两个敌人同时压在玩家身上：第一个接触成功后，
// 全局冷却让第二个敌人在同一帧无法再扣血
func TestContactCooldownsPreventStacking(t *testing.T) {
	em, queue, tuning := newTestWorld()
	playerID := spawnTestPlayer(em, tuning, 100, 100)
	spawnTestEnemy(em, tuning, 110, 100, 30)
	spawnTestEnemy(em, tuning, 90, 100, 30)

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)

	s := NewContactDamageSystem(em, queue, tuning, newTestWeaponTables(), newTestRNG())
	s.Update(0.016)

	// 只吃了一次 10 点伤害
	if player.Shield != 20 {
		t.Errorf("Global cooldown should allow exactly one hit, shield=%v", player.Shield)
	}

	// 全局冷却期间重复更新也不再扣
	s.Update(0.016)
	if player.Shield != 20 {
		t.Errorf("Shield should stay 20 during global cooldown, got %v", player.Shield)
	}
}

// TestPerEnemyContactCooldown 单个敌人的接触冷却
func TestPerEnemyContactCooldown(t *testing.T) {
	em, queue, tuning := newTestWorld()
	spawnTestPlayer(em, tuning, 100, 100)
	enemyID := spawnTestEnemy(em, tuning, 110, 100, 30)

	s := NewContactDamageSystem(em, queue, tuning, newTestWeaponTables(), newTestRNG())
	s.Update(0.016)

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	if enemy.ContactCooldown <= 0 {
		t.Fatal("Enemy should enter contact cooldown after a hit")
	}

	// 冷却走完后可以再次造成接触
	for i := 0; i < 60; i++ {
		s.Update(0.016)
	}
	player := mustPlayer(t, em)
	// 0.8 秒敌人冷却 + 0.35 秒全局冷却都已过，至少发生了第二次接触
	if player.Shield > 10 {
		t.Errorf("Expected at least two contacts after cooldowns expire, shield=%v", player.Shield)
	}
}

// TestBodyWeaponReflectsDamage 被动反伤武器在接触时反击敌人
func TestBodyWeaponReflectsDamage(t *testing.T) {
	em, queue, tuning := newTestWorld()
	playerID := spawnTestPlayer(em, tuning, 100, 100)
	enemyID := spawnTestEnemy(em, tuning, 110, 100, 30)

	owner, _ := ecs.GetComponent[*components.WeaponOwnerComponent](em, playerID)
	owner.Weapons[components.WeaponBody] = &components.WeaponState{
		Kind: components.WeaponBody, Level: 1, Active: true,
	}

	s := NewContactDamageSystem(em, queue, tuning, newTestWeaponTables(), newTestRNG())
	s.Update(0.016)

	enemyHealth, _ := ecs.GetComponent[*components.HealthComponent](em, enemyID)
	if enemyHealth.CurrentHealth != 24 {
		t.Errorf("Expected enemy health 24 (body damage 6), got %d", enemyHealth.CurrentHealth)
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, enemyID)
	if !enemy.KnockedBack || enemy.KnockbackVX <= 0 {
		t.Errorf("Enemy should be knocked away from the player, VX=%v", enemy.KnockbackVX)
	}
}

// TestPlayerDeathEvent 致死接触发布玩家死亡事件
func TestPlayerDeathEvent(t *testing.T) {
	em, queue, tuning := newTestWorld()
	playerID := spawnTestPlayer(em, tuning, 100, 100)
	spawnTestEnemy(em, tuning, 110, 100, 30)

	player, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	player.Shield = 0
	health, _ := ecs.GetComponent[*components.HealthComponent](em, playerID)
	health.CurrentHealth = 5

	s := NewContactDamageSystem(em, queue, tuning, newTestWeaponTables(), newTestRNG())
	s.Update(0.016)

	if !health.Dead {
		t.Fatal("Player should be dead")
	}
	found := false
	for _, evt := range queue.Drain() {
		if evt.Type == events.EventPlayerDied && evt.Entity == playerID {
			found = true
		}
	}
	if !found {
		t.Error("Expected a player death event")
	}
}

// mustPlayer 取出第一个玩家组件
func mustPlayer(t *testing.T, em *ecs.EntityManager) *components.PlayerComponent {
	t.Helper()
	for _, id := range ecs.GetEntitiesWith1[*components.PlayerComponent](em) {
		player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
		return player
	}
	t.Fatal("No player entity in world")
	return nil
}
