package fonts

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []FontName{Regular, Bold, Title, Small} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
	if Title.Get().Metrics().Height <= Small.Get().Metrics().Height {
		t.Error("title face should be taller than the small face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("error %v should wrap the parser error", err)
	}
	if err := LoadFontWithSize("custom", goregular.TTF, 10); err != nil {
		t.Fatal(err)
	}
}

func TestGetUnknownFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get on an unloaded font should panic")
		}
	}()
	FontName("missing").Get()
}
