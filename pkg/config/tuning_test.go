package config

import "testing"

const validTuningYAML = `
player:
  maxHealth: 100
  moveSpeed: 140.0
  pickupRange: 64.0
  invulnerabilityWindow: 0.8
  shieldCapacity: 30
  shieldRechargeDelay: 4.0
  shieldRechargeRate: 8.0
  dashSpeed: 420.0
  dashDuration: 0.18
  dashCooldown: 1.2
combat:
  critBaseChance: 0.05
  enemyInvulnerabilityWindow: 0.02
  contactCooldownPerEnemy: 0.8
  contactCooldownGlobal: 0.35
  hitFlashDuration: 0.12
physics:
  knockbackFriction: 6.0
  knockbackSnapThreshold: 4.0
  knockbackStunDuration: 0.15
  maxKnockbackSpeed: 900.0
  tileCollisionMargin: 2.0
progression:
  xpBase: 10.0
  xpGrowth: 1.35
world:
  width: 1600.0
  height: 1200.0
`

// TestParseTuning 测试正常配置解析
func TestParseTuning(t *testing.T) {
	config, err := ParseTuning([]byte(validTuningYAML))
	if err != nil {
		t.Fatalf("ParseTuning failed: %v", err)
	}

	if config.Player.MaxHealth != 100 {
		t.Errorf("Expected maxHealth 100, got %d", config.Player.MaxHealth)
	}
	if config.Combat.ContactCooldownGlobal != 0.35 {
		t.Errorf("Expected contactCooldownGlobal 0.35, got %f", config.Combat.ContactCooldownGlobal)
	}
	if config.Physics.KnockbackFriction != 6.0 {
		t.Errorf("Expected knockbackFriction 6.0, got %f", config.Physics.KnockbackFriction)
	}
	if config.Progression.XPGrowth != 1.35 {
		t.Errorf("Expected xpGrowth 1.35, got %f", config.Progression.XPGrowth)
	}
}

// TestParseTuningInvalid 测试畸形配置的启动期快速失败
func TestParseTuningInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"空配置", ``},
		{"暴击率越界", "player:\n  maxHealth: 100\n  moveSpeed: 1\n  pickupRange: 1\ncombat:\n  critBaseChance: 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.yaml)); err == nil {
				t.Error("Expected error for invalid config")
			}
		})
	}
}
