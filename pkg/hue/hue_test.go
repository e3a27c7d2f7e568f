package hue

import (
	"math"
	"testing"
)

func TestMixCircularMean(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		want float64
	}{
		{"single", []float64{45}, 45},
		{"wraps through zero", []float64{10, 350}, 0},
		{"plain average", []float64{30, 90}, 60},
		{"negative result normalized", []float64{300, 320}, 310},
		{"three around red", []float64{350, 0, 10}, 0},
	}
	for _, tc := range cases {
		got, ok := Mix(tc.in)
		if !ok {
			t.Fatalf("%s: Mix(%v) reported no result", tc.name, tc.in)
		}
		if Distance(got, tc.want) > 1e-9 {
			t.Fatalf("%s: Mix(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("%s: Mix(%v) = %v outside [0,360)", tc.name, tc.in, got)
		}
	}
}

func TestMixNotArithmeticMean(t *testing.T) {
	got, _ := Mix([]float64{10, 350})
	if Distance(got, 180) < 90 {
		t.Fatalf("Mix(10, 350) = %v, looks like an arithmetic mean", got)
	}
}

func TestMixCancellingInputsDoNotPanic(t *testing.T) {
	got, ok := Mix([]float64{0, 90, 180, 270})
	if !ok {
		t.Fatal("Mix with four inputs must report a result")
	}
	if math.IsNaN(got) || got < 0 || got >= 360 {
		t.Fatalf("Mix of cancelling hues = %v, want a hue in [0,360)", got)
	}
}

func TestMixEmpty(t *testing.T) {
	if _, ok := Mix(nil); ok {
		t.Fatal("Mix(nil) must report no result")
	}
}

func TestNormalize(t *testing.T) {
	cases := map[float64]float64{
		0:    0,
		360:  0,
		-10:  350,
		725:  5,
		-360: 0,
	}
	for in, want := range cases {
		if got := Normalize(in); math.Abs(got-want) > 1e-9 {
			t.Fatalf("Normalize(%v) = %v, want %v", in, got, want)
		}
	}
	if got := Normalize(math.NaN()); got != 0 {
		t.Fatalf("Normalize(NaN) = %v, want 0", got)
	}
}

func TestColorRoundTrip(t *testing.T) {
	for _, h := range []float64{0, 45, 120, 200, 359} {
		c := Color(h)
		if got := Of(c); Distance(got, h) > 1e-6 {
			t.Fatalf("Of(Color(%v)) = %v", h, got)
		}
		_, s, v := c.Hsv()
		if math.Abs(s-1) > 1e-9 || math.Abs(v-1) > 1e-9 {
			t.Fatalf("Color(%v) has s=%v v=%v, want full saturation and value", h, s, v)
		}
	}
}
