package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"stylo/css"
	"stylo/plugin"
	"stylo/style"
)

// Config carries construction-time renderer options. The zero value is usable:
// nop logger, default keyframe prefixes, no plugins, no enhancers.
type Config struct {
	Logger           *zap.Logger
	KeyframePrefixes []string
	Plugins          []plugin.Plugin
	Enhancers        []Enhancer
}

var defaultKeyframePrefixes = []string{"-webkit-", "-moz-"}

// font descriptor properties copied from render properties into a generated
// @font-face block; everything else in the properties map only feeds the
// cache key
var fontDescriptors = []string{"fontVariant", "fontWeight", "fontStretch", "fontStyle", "unicodeRange"}

// Renderer owns every cache and buffer of the engine. Not safe for concurrent
// use; see the package documentation.
type Renderer struct {
	log      *zap.Logger
	prefixes []string
	plugins  []plugin.Plugin

	// Resolve invokes a rule or keyframe definition to obtain its style
	// object. Enhancers may wrap it to intercept resolution.
	Resolve func(fn RenderFunc, props style.Props) style.Style

	ids      map[any]int
	next     int
	bases    map[int]style.Style
	rendered map[string]bool

	fontFaces  strings.Builder
	statics    strings.Builder
	rules      strings.Builder
	media      map[string]*strings.Builder
	mediaOrder []string
	keyframes  strings.Builder

	listeners []listener
}

// New creates a renderer and applies configured enhancers left to right. The
// result is the final object handed to callers; enhancers must not be applied
// again after first use.
func New(cfg Config) *Renderer {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prefixes := cfg.KeyframePrefixes
	if prefixes == nil {
		prefixes = defaultKeyframePrefixes
	}

	r := &Renderer{
		log:      log.Named("renderer"),
		prefixes: prefixes,
		plugins:  cfg.Plugins,
	}
	r.Resolve = func(fn RenderFunc, props style.Props) style.Style {
		return fn(props)
	}
	r.Clear()

	for _, enhance := range cfg.Enhancers {
		if enhance == nil {
			continue
		}
		r = enhance(r)
	}
	return r
}

// Clear wipes every cache and buffer. Previously seen definitions become
// first-timers again; subscribers stay subscribed.
func (r *Renderer) Clear() {
	r.ids = make(map[any]int)
	r.next = 0
	r.bases = make(map[int]style.Style)
	r.rendered = make(map[string]bool)
	r.fontFaces.Reset()
	r.statics.Reset()
	r.rules.Reset()
	r.media = make(map[string]*strings.Builder)
	r.mediaOrder = nil
	r.keyframes.Reset()
}

// register assigns an index to a definition on first sight and reports whether
// this sighting was the first.
func (r *Renderer) register(def any) (int, bool) {
	if idx, ok := r.ids[def]; ok {
		return idx, false
	}
	idx := r.next
	r.next++
	r.ids[def] = idx
	return idx, true
}

// RenderRule renders a rule for the given properties and returns the class
// name(s) to apply: the base class alone when the variant adds nothing, or
// "base variant" when a delta was emitted. Passing a nil rule or a rule
// without a render function is a caller contract violation and panics.
func (r *Renderer) RenderRule(rule *Rule, props style.Props) string {
	if rule == nil || rule.Render == nil {
		panic("renderer: RenderRule requires a rule with a render function")
	}

	idx, first := r.register(rule)
	if first && len(props) > 0 {
		// the base variant must exist before any dynamic diff
		r.RenderRule(rule, nil)
	}

	baseClass := "c" + strconv.Itoa(idx)
	className := baseClass + style.RefToken(props)

	if _, done := r.rendered[className]; !done {
		resolved := r.Resolve(rule.Render, props)
		delta := style.Diff(resolved, r.bases[idx])
		if className == baseClass {
			// the undiffed resolved style is the baseline for every dynamic
			// variant of this rule
			r.bases[idx] = resolved
		}
		if len(delta) == 0 {
			r.rendered[className] = false
			r.log.Debug("variant adds no declarations", zap.String("class", className), zap.String("rule", rule.Name))
		} else {
			processed := plugin.Process(delta, plugin.Meta{
				Type:       plugin.TypeRule,
				ClassName:  className,
				ID:         idx,
				Props:      props,
				Definition: rule,
			}, r.plugins)
			emitted := r.emitStyle(processed, className, "", "")
			r.rendered[className] = emitted
			if emitted {
				r.emitChange()
			}
		}
	}

	if !r.rendered[className] {
		return baseClass
	}
	if className == baseClass {
		return className
	}
	return baseClass + " " + className
}

// RenderKeyframe renders a keyframe definition and returns its animation
// name. Keyframes are rendered whole - no base variant, no diffing.
func (r *Renderer) RenderKeyframe(kf *Keyframe, props style.Props) string {
	if kf == nil || kf.Render == nil {
		panic("renderer: RenderKeyframe requires a keyframe with a render function")
	}

	idx, _ := r.register(kf)
	name := "k" + strconv.Itoa(idx) + style.RefToken(props)

	if _, done := r.rendered[name]; !done {
		resolved := r.Resolve(kf.Render, props)
		processed := plugin.Process(resolved, plugin.Meta{
			Type:       plugin.TypeKeyframe,
			ClassName:  name,
			ID:         idx,
			Props:      props,
			Definition: kf,
		}, r.plugins)
		r.keyframes.WriteString(css.Keyframe(processed, name, r.prefixes))
		r.rendered[name] = true
		r.emitChange()
	}
	return name
}

// RenderFont generates an @font-face block for the family and returns the
// family name unchanged - the identifier clients use in font-family. Only the
// recognized font descriptor properties are copied from props into the block.
func (r *Renderer) RenderFont(family string, files []string, props style.Props) string {
	key := family + style.RefToken(props)
	if _, done := r.rendered[key]; done {
		return family
	}

	src := make([]string, 0, len(files))
	for _, f := range files {
		src = append(src, fmt.Sprintf("url('%s') format('%s')", f, css.FontFormat(f)))
	}
	face := style.Style{
		"fontFamily": family,
		"src":        strings.Join(src, ","),
	}
	for _, d := range fontDescriptors {
		if v, ok := props[d]; ok {
			face[d] = v
		}
	}

	r.fontFaces.WriteString("@font-face{" + css.Declarations(face) + "}")
	r.rendered[key] = true
	r.emitChange()
	return family
}

// RenderStatic appends raw CSS text to the static buffer, collapsing
// whitespace runs first. The raw text itself is the deduplication key.
func (r *Renderer) RenderStatic(cssText string) {
	if _, done := r.rendered[cssText]; done {
		return
	}
	r.statics.WriteString(css.CollapseWhitespace(cssText))
	r.rendered[cssText] = true
	r.emitChange()
}

// RenderStaticRule renders a flat style object under an arbitrary selector
// into the static buffer. Deduplication key is the selector plus the style's
// deterministic signature.
func (r *Renderer) RenderStaticRule(selector string, st style.Style) {
	key := selector + style.Stringify(st)
	if _, done := r.rendered[key]; done {
		return
	}
	processed := plugin.Process(st, plugin.Meta{
		Type:     plugin.TypeStatic,
		Selector: selector,
	}, r.plugins)
	r.statics.WriteString(selector + "{" + css.Declarations(processed) + "}")
	r.rendered[key] = true
	r.emitChange()
}

// RenderToString concatenates every buffer in fixed cascade order: font faces,
// statics, plain rules, media buckets in first-insertion order, keyframes.
func (r *Renderer) RenderToString() string {
	var b strings.Builder
	b.WriteString(r.fontFaces.String())
	b.WriteString(r.statics.String())
	b.WriteString(r.rules.String())
	for _, cond := range r.mediaOrder {
		b.WriteString("@media " + cond + "{" + r.media[cond].String() + "}")
	}
	b.WriteString(r.keyframes.String())
	return b.String()
}
