package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawn(t *testing.T, kind MonsterKind, maxHP int) *Monster {
	t.Helper()
	return newMonster(Spawn{Kind: kind, MaxHP: maxHP}, 0, rand.New(rand.NewSource(1)))
}

func TestParseMonsterKind(t *testing.T) {
	for _, k := range MonsterKinds {
		got, err := ParseMonsterKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseMonsterKind("Slime")
	assert.ErrorIs(t, err, ErrUnknownMonster)
}

func TestLouseDamageFixedAtSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		m := newMonster(Spawn{Kind: Louse, MaxHP: 10}, i, rng)
		first := m.Action()
		assert.GreaterOrEqual(t, first.Damage, louseMinDamage)
		assert.LessOrEqual(t, first.Damage, louseMaxDamage)
		for j := 0; j < 3; j++ {
			assert.Equal(t, first, m.Action())
		}
	}
}

func TestCultistSequence(t *testing.T) {
	m := spawn(t, Cultist, 50)

	wantDamage := []int{6, 7, 8, 9}
	wantWeak := []int{1, 0, 1, 0}
	for i := range wantDamage {
		assert.Equal(t, Intent{Damage: wantDamage[i], Weak: wantWeak[i]}, m.Intent(), "intent before call %d", i)
		got := m.Action()
		assert.Equal(t, wantDamage[i], got.Damage, "call %d", i)
		assert.Equal(t, wantWeak[i], got.Weak, "call %d", i)
	}
}

func TestJawWormReacts(t *testing.T) {
	tests := []struct {
		name      string
		taken     int
		wantDmg   int
		wantBlock int
	}{
		{"untouched", 0, 0, 0},
		{"even", 6, 3, 3},
		{"odd", 7, 3, 4},
		{"one", 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := spawn(t, JawWorm, 40)
			m.Damage(tt.taken)

			got := m.Action()
			assert.Equal(t, Intent{Damage: tt.wantDmg}, got)
			assert.Equal(t, tt.wantBlock, m.Block())
		})
	}
}

func TestJawWormTracksCumulativeDamage(t *testing.T) {
	m := spawn(t, JawWorm, 40)
	m.Damage(4)
	m.Action()
	m.BeginOwnTurn()
	m.Damage(6)

	got := m.Action()
	assert.Equal(t, 5, got.Damage)
	assert.Equal(t, 5, m.Block())
}

func TestIntentDoesNotMutate(t *testing.T) {
	m := spawn(t, JawWorm, 40)
	m.Damage(10)
	m.Intent()
	m.Intent()
	assert.Equal(t, 0, m.Block())

	c := spawn(t, Cultist, 40)
	c.Intent()
	assert.Equal(t, 6, c.Action().Damage)
}

func TestIDAllocator(t *testing.T) {
	a := NewIDAllocator()
	b := NewIDAllocator()
	assert.Equal(t, 0, a.Next())
	assert.Equal(t, 1, a.Next())
	assert.Equal(t, 0, b.Next(), "allocators are independent")
	assert.Equal(t, 2, a.Next())
}

func TestMonsterSnapshot(t *testing.T) {
	m := newMonster(Spawn{Kind: Cultist, MaxHP: 48}, 7, rand.New(rand.NewSource(1)))
	snap := m.Snapshot()
	assert.Equal(t, 7, snap.ID)
	assert.Equal(t, "Cultist #7", snap.Label)
	assert.Equal(t, 48, snap.HP)
	assert.Equal(t, Intent{Damage: 6, Weak: 1}, snap.Intent)
	assert.Equal(t, "Cultist: 48/48 HP", m.String())
}
