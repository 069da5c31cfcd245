package chainfmt

import "pkt.systems/chainfmt/ansi"

// formatLayer renders one positional argument, or fixed text when fixed is
// set.
type formatLayer struct {
	style      ansi.Style
	processors []func(string) string
	fixed      func() string
	skip       bool
	indentJSON bool
	timestamp  bool
}

func (l *formatLayer) consumesArgument() bool {
	return l.fixed == nil
}

func (l *formatLayer) process(content string) string {
	for _, fn := range l.processors {
		content = fn(content)
	}
	return content
}

// layerStore is the ordered layer sequence of one chain. Layers inserted at
// the front (timestamps) are counted by prefix and never become current.
type layerStore struct {
	layers []*formatLayer
	prefix int
	base   ansi.Style
}

func newLayerStore(base ansi.Style) *layerStore {
	return &layerStore{base: base}
}

func (s *layerStore) emptyLayer() *formatLayer {
	return &formatLayer{style: s.base}
}

// current returns the last appended layer, creating an argument-consuming
// one when nothing has been appended yet.
func (s *layerStore) current() *formatLayer {
	if len(s.layers) == s.prefix {
		return s.newLayer(false)
	}
	return s.layers[len(s.layers)-1]
}

func (s *layerStore) newLayer(prepend bool) *formatLayer {
	layer := s.emptyLayer()
	if prepend {
		s.layers = append([]*formatLayer{layer}, s.layers...)
		s.prefix++
		return layer
	}
	s.layers = append(s.layers, layer)
	return layer
}

// timestampLayer returns the prepended timestamp layer, if any.
func (s *layerStore) timestampLayer() *formatLayer {
	for _, layer := range s.layers[:s.prefix] {
		if layer.timestamp {
			return layer
		}
	}
	return nil
}

func (s *layerStore) addStyle(name string) bool {
	layer := s.current()
	style, ok := layer.style.With(name)
	if ok {
		layer.style = style
	}
	return ok
}

func (s *layerStore) addProcessor(fn func(string) string) {
	layer := s.current()
	layer.processors = append(layer.processors, fn)
}

// reset returns the current layer to neutral styling while keeping its
// position and fixed text.
func (s *layerStore) reset() {
	layer := s.current()
	layer.style = s.base.WithLevel(layer.style.Level())
	layer.processors = nil
	layer.indentJSON = false
}

func (s *layerStore) argumentLayers() int {
	n := 0
	for _, layer := range s.layers {
		if !layer.skip && layer.consumesArgument() {
			n++
		}
	}
	return n
}
