package card

import "testing"

func TestResetPreservesIdentityNotValue(t *testing.T) {
	c := &Card{TrumpSuit: 2}
	c.Bind(Identity{Suit: 1, Value: 3})
	c.Visibility = Private

	c.Reset()

	if c.Visibility != Unknown {
		t.Fatalf("expected Unknown after reset, got %v", c.Visibility)
	}
	if c.TrumpSuit != 2 {
		t.Fatalf("trump suit must survive reset, got %v", c.TrumpSuit)
	}
}

func TestBindAlreadyBoundPanics(t *testing.T) {
	c := &Card{}
	c.Bind(Identity{Suit: 0, Value: 0})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic binding an already-bound card")
		}
	}()
	c.Bind(Identity{Suit: 1, Value: 1})
}

func TestIsTrump(t *testing.T) {
	c := &Card{TrumpSuit: 3}
	if c.IsTrump() {
		t.Fatal("unknown card must never be a trump")
	}
	c.Bind(Identity{Suit: 3, Value: 0})
	c.Visibility = Public
	if !c.IsTrump() {
		t.Fatal("card sharing the trump suit must be a trump")
	}
}

func TestMakeCopyIsDetached(t *testing.T) {
	c := &Card{TrumpSuit: 1}
	c.Bind(Identity{Suit: 1, Value: 4})
	c.Visibility = Public

	cp := c.MakeCopy()
	c.Reset()

	if cp.Visibility != Public || cp.Value != 4 {
		t.Fatal("copy must not be affected by mutating the original")
	}
}
