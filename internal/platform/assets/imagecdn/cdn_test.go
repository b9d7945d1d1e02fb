package imagecdn

import (
	"errors"
	"testing"
)

func TestFlatCDNURLIgnoresTransforms(t *testing.T) {
	t.Parallel()

	cdn := New("https://cdn.example.com/assets/")
	got, err := cdn.URL(Request{
		AssetID:   "001",
		Extension: ".jpg",
		Delivery:  &Delivery{WidthPX: 800, Quality: 90},
	})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	want := "https://cdn.example.com/assets/001.jpg"
	if got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
	if cdn.Transforms() {
		t.Fatal("Transforms() = true, want false")
	}
}

func TestLocalPathBaseEscapesSegments(t *testing.T) {
	t.Parallel()

	got, err := New("/static/images").URL(Request{AssetID: "summer trip/beach", Extension: "jpg"})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	want := "/static/images/summer%20trip/beach.jpg"
	if got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
}

func TestCloudinaryCDNURLIncludesDeliveryTransform(t *testing.T) {
	t.Parallel()

	cdn := New("https://res.cloudinary.com/carousel/image/upload")
	got, err := cdn.URL(Request{
		AssetID:   "001",
		Extension: ".jpg",
		Delivery:  &Delivery{WidthPX: 800},
	})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	want := "https://res.cloudinary.com/carousel/image/upload/f_auto,q_auto,dpr_auto,c_limit,w_800/001.jpg"
	if got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
	if !cdn.Transforms() {
		t.Fatal("Transforms() = false, want true")
	}

	plain, err := cdn.URL(Request{AssetID: "001", Extension: ".jpg"})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	if want := "https://res.cloudinary.com/carousel/image/upload/001.jpg"; plain != want {
		t.Fatalf("cdn.URL(no delivery) = %q, want %q", plain, want)
	}
}

func TestCloudinaryDeliveryQuality(t *testing.T) {
	t.Parallel()

	got, err := New("https://res.cloudinary.com/carousel/image/upload").URL(Request{
		AssetID:  "gallery/one",
		Delivery: &Delivery{WidthPX: 800, Quality: 90},
	})
	if err != nil {
		t.Fatalf("resolve url: %v", err)
	}
	want := "https://res.cloudinary.com/carousel/image/upload/f_auto,q_90,dpr_auto,c_limit,w_800/gallery/one"
	if got != want {
		t.Fatalf("cdn.URL(...) = %q, want %q", got, want)
	}
}

func TestCDNURLRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := New("https://cdn.example.com").URL(Request{}); !errors.Is(err, ErrAssetIDRequired) {
		t.Fatalf("cdn.URL(...) error = %v, want %v", err, ErrAssetIDRequired)
	}
	if _, err := New("").URL(Request{AssetID: "001"}); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("cdn.URL(...) error = %v, want %v", err, ErrBaseURLRequired)
	}
	if _, err := New("https://res.cloudinary.com/x/image/upload").URL(Request{AssetID: " / "}); !errors.Is(err, ErrAssetIDRequired) {
		t.Fatalf("cdn.URL(...) error = %v, want %v", err, ErrAssetIDRequired)
	}
}
