package chainfmt

import (
	"testing"

	"pkt.systems/chainfmt/ansi"
)

func TestLayerStoreCurrentCreatesLazily(t *testing.T) {
	s := newLayerStore(ansi.New(ansi.LevelBasic))
	if len(s.layers) != 0 {
		t.Fatalf("expected empty store, got %d layers", len(s.layers))
	}
	first := s.current()
	if len(s.layers) != 1 {
		t.Fatalf("expected lazily created layer, got %d layers", len(s.layers))
	}
	if !first.consumesArgument() {
		t.Fatalf("lazily created layer must consume an argument")
	}
	if s.current() != first {
		t.Fatalf("current should return the same layer until a new one is added")
	}
}

func TestLayerStorePrependNeverBecomesCurrent(t *testing.T) {
	s := newLayerStore(ansi.New(ansi.LevelBasic))
	stamp := s.newLayer(true)
	stamp.timestamp = true
	stamp.fixed = func() string { return "12:00:00" }

	cur := s.current()
	if cur == stamp {
		t.Fatalf("prepended layer must not become current")
	}
	if len(s.layers) != 2 || s.layers[0] != stamp {
		t.Fatalf("unexpected layer order: %+v", s.layers)
	}
	if s.timestampLayer() != stamp {
		t.Fatalf("timestampLayer did not find the prepended layer")
	}

	text := s.newLayer(false)
	if s.current() != text {
		t.Fatalf("appended layer should become current")
	}
}

func TestLayerStoreAddStyleComposes(t *testing.T) {
	s := newLayerStore(ansi.New(ansi.LevelBasic))
	if !s.addStyle("red") || !s.addStyle("bold") {
		t.Fatalf("expected known styles to be accepted")
	}
	if s.addStyle("nope") {
		t.Fatalf("unknown style should be rejected")
	}
	got := s.current().style.Apply("x")
	want := "\x1b[31m\x1b[1mx\x1b[22m\x1b[39m"
	if got != want {
		t.Fatalf("styles did not compose: got %q want %q", got, want)
	}
}

func TestLayerStoreProcessorsApplyInOrder(t *testing.T) {
	s := newLayerStore(ansi.New(ansi.LevelNone))
	s.addProcessor(func(v string) string { return v + "a" })
	s.addProcessor(func(v string) string { return v + "b" })
	if got := s.current().process("-"); got != "-ab" {
		t.Fatalf("unexpected processor order: %q", got)
	}
}

func TestLayerStoreResetKeepsPositionAndLevel(t *testing.T) {
	s := newLayerStore(ansi.New(ansi.LevelBasic))
	s.newLayer(false)
	layer := s.current()
	layer.style = layer.style.WithLevel(ansi.LevelTrueColor)
	s.addStyle("red")
	s.addProcessor(squareBrackets)
	layer.indentJSON = true

	s.reset()
	if s.current() != layer || len(s.layers) != 1 {
		t.Fatalf("reset must keep the layer in place")
	}
	if !layer.style.Plain() || len(layer.processors) != 0 || layer.indentJSON {
		t.Fatalf("reset left configuration behind: %+v", layer)
	}
	if layer.style.Level() != ansi.LevelTrueColor {
		t.Fatalf("reset should keep the layer level, got %v", layer.style.Level())
	}
}

func TestLayerStoreArgumentLayers(t *testing.T) {
	s := newLayerStore(ansi.New(ansi.LevelNone))
	s.newLayer(false)
	sep := s.newLayer(false)
	sep.fixed = func() string { return "---" }
	s.newLayer(false)
	skipped := s.newLayer(false)
	skipped.skip = true
	if got := s.argumentLayers(); got != 2 {
		t.Fatalf("expected 2 argument layers, got %d", got)
	}
}
