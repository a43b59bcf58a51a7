package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

type payload struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	dir, err := Open(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Store{"dir": dir, "mem": NewMem()}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			in := payload{Name: "bills", Count: 3, Tags: []string{"a", "b"}}
			if err := s.Set("bills", in); err != nil {
				t.Fatalf("Set: %v", err)
			}

			var out payload
			ok, err := s.Get("bills", &out)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !ok {
				t.Fatal("Get reported the key missing")
			}
			if !reflect.DeepEqual(in, out) {
				t.Errorf("round trip = %+v, want %+v", out, in)
			}
		})
	}
}

func TestStore_MissingKey(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			out := payload{Name: "untouched"}
			ok, err := s.Get("nope", &out)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if ok {
				t.Error("Get reported a missing key as present")
			}
			if out.Name != "untouched" {
				t.Error("Get modified the target for a missing key")
			}
		})
	}
}

func TestStore_SetReplaces(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set("theme", "light")
			s.Set("theme", "dark")

			var theme string
			if _, err := s.Get("theme", &theme); err != nil {
				t.Fatal(err)
			}
			if theme != "dark" {
				t.Errorf("theme = %q, want %q", theme, "dark")
			}
		})
	}
}

func TestStore_Keys(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			s.Set("personal_tx", []string{})
			s.Set("bills", []string{})

			keys, err := s.Keys()
			if err != nil {
				t.Fatal(err)
			}
			want := []string{"bills", "personal_tx"}
			if !reflect.DeepEqual(keys, want) {
				t.Errorf("Keys() = %v, want %v", keys, want)
			}
		})
	}
}

func TestDir_Raw(t *testing.T) {
	dir, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := dir.Set("theme", "dark"); err != nil {
		t.Fatal(err)
	}

	data, ok, err := dir.Raw("theme")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Raw reported the key missing")
	}
	if string(data) != `"dark"` {
		t.Errorf("Raw = %s, want %q", data, `"dark"`)
	}

	if _, ok, _ := dir.Raw("nope"); ok {
		t.Error("Raw reported a missing key as present")
	}
}
