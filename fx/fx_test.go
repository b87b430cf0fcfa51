package fx

import "testing"

// Shader compilation is pure Kage parsing, so these run without a display.

func TestPixelateShaderCompiles(t *testing.T) {
	if _, err := NewPixelate(3); err != nil {
		t.Fatalf("pixelate shader: %v", err)
	}
}

func TestCRTShaderCompiles(t *testing.T) {
	if _, err := NewCRT(0.12, 0.25, 1.5); err != nil {
		t.Fatalf("crt shader: %v", err)
	}
}

func TestGlowShaderCompiles(t *testing.T) {
	if _, err := NewGlow(0.4, 1.2); err != nil {
		t.Fatalf("glow shader: %v", err)
	}
}

func TestBackgroundShaderCompiles(t *testing.T) {
	if _, err := NewBackground(); err != nil {
		t.Fatalf("background shader: %v", err)
	}
}

func TestChainLen(t *testing.T) {
	p, err := NewPixelate(2)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCRT(0.1, 0.2, 1)
	if err != nil {
		t.Fatal(err)
	}

	chain := NewChain(p, c)
	if chain.Len() != 2 {
		t.Fatalf("chain length = %d, want 2", chain.Len())
	}
	if NewChain().Len() != 0 {
		t.Fatal("empty chain should have length 0")
	}
}
