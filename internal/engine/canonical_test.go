package engine

import "testing"

// P5. Signature idempotence under rotation and reflection.
func TestCanonicalSignature_RotationInvariant(t *testing.T) {
	base := []int64{10, 20, 30, 40}
	want := signatureKey(canonicalSignature(base))

	for k := 0; k < len(base); k++ {
		rotated := rotate(base, k)
		got := signatureKey(canonicalSignature(rotated))
		if got != want {
			t.Errorf("rotate(base, %d): signature = %s, want %s", k, got, want)
		}
	}
}

func TestCanonicalSignature_ReflectionInvariant(t *testing.T) {
	base := []int64{10, 20, 30, 40}
	want := signatureKey(canonicalSignature(base))

	got := signatureKey(canonicalSignature(reverseInts(base)))
	if got != want {
		t.Errorf("reverse(base): signature = %s, want %s", got, want)
	}
}

func TestCanonicalSignature_DistinctCyclesDiffer(t *testing.T) {
	a := canonicalSignature([]int64{1, 2, 3})
	b := canonicalSignature([]int64{1, 2, 4})

	if signatureKey(a) == signatureKey(b) {
		t.Errorf("distinct edge sets produced equal signatures: %v vs %v", a, b)
	}
}
