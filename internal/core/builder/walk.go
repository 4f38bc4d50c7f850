package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/yndnr/snaptree-go/internal/core/classify"
	"github.com/yndnr/snaptree-go/internal/core/domain"
	"github.com/yndnr/snaptree-go/internal/core/fiber"
	"github.com/yndnr/snaptree-go/internal/core/hooknames"
	"github.com/yndnr/snaptree-go/internal/core/snapshot"
	"github.com/yndnr/snaptree-go/internal/telemetry/logger"
)

// pass is the state of one build. It is never shared between builds.
type pass struct {
	ctx     context.Context
	b       *Builder
	log     logger.Logger
	visited map[*fiber.Node]struct{}
	tags    tagger
	stats   Stats
	// err is the context error that stopped the walk.
	err error
}

func newPass(ctx context.Context, b *Builder) *pass {
	return &pass{
		ctx:     ctx,
		b:       b,
		log:     logger.L(ctx),
		visited: make(map[*fiber.Node]struct{}),
		tags:    tagger{prefix: b.tagPrefix},
	}
}

// visit handles n and the siblings after it, all under parent. Recursion
// only follows child links; a sibling chain is walked in a loop.
func (p *pass) visit(n *fiber.Node, parent *snapshot.Node) {
	for cur := n; cur != nil; cur = cur.Sibling {
		if p.aborted() {
			return
		}
		if _, seen := p.visited[cur]; seen {
			p.stats.Cycles++
			return
		}
		p.visited[cur] = struct{}{}
		p.stats.Visited++

		next := p.node(cur, parent)
		if cur.Child != nil {
			p.visit(cur.Child, next)
		}
	}
}

// aborted reports whether the build context is done, keeping its error.
func (p *pass) aborted() bool {
	if p.err == nil {
		p.err = p.ctx.Err()
	}
	return p.err != nil
}

// node extracts n and returns the parent for n's children: a new snapshot
// node when n is accepted, parent otherwise.
func (p *pass) node(n *fiber.Node, parent *snapshot.Node) *snapshot.Node {
	name := classify.ResolveName(n)
	excluded := func() bool { return classify.IsExcluded(name, p.b.filters) }
	ext := p.b.extractor

	data := snapshot.NewData()
	copyTiming(&data, n.Timing)

	if !excluded() && classify.IsPropsBearing(n.Tag) && n.MemoizedProps != nil {
		data.Props = ext.ExtractProps(classify.ShapeOf(n), n.MemoizedProps)
	}

	if !excluded() && classify.IsStoreProvider(n) && classify.HasMemoizedValue(n) {
		data.Context = ext.GetStateAndContextData(n.HeadHook(), n.ElementType.Name, n.DebugHookTypes)
	}
	if !excluded() && classify.IsAnonymousContextProvider(n) {
		data.Context = ext.ContextValue(n.MemoizedProps)
		name = "Context"
	}

	var (
		state    snapshot.State
		stateful bool
	)
	class := p.classify(n, name)
	switch {
	case class == classify.StatefulDirect && !excluded():
		state, stateful = p.directState(n, name, &data)
	case class == classify.StatefulChained && !excluded():
		state, stateful = p.chainedState(n, name, &data)
	}
	if !stateful && class.Accepted() {
		state = snapshot.Stateless()
	}

	if class == classify.Excluded || excluded() {
		p.stats.Excluded++
		return parent
	}
	if !class.Accepted() {
		return parent
	}

	tag, tagged := p.tag(n, name)
	if tagged {
		p.stats.Tagged++
	}
	p.stats.Accepted++
	return parent.AddChild(name, state, data, tag)
}

// classify runs the classifier under guard since it calls into the
// instance. A failing instance leaves the node stateless.
func (p *pass) classify(n *fiber.Node, name string) classify.Class {
	var class classify.Class
	err := p.guard(func() error {
		class = classify.Classify(n, name, p.b.filters)
		return nil
	})
	if err == nil {
		return class
	}
	p.failed(FailureDirectState, name, err)
	if classify.IsComponentLike(n.Tag) {
		return classify.Stateless
	}
	return classify.PassThrough
}

// tag applies the next traversal tag to n's element under guard.
func (p *pass) tag(n *fiber.Node, name string) (tag string, ok bool) {
	err := p.guard(func() error {
		tag, ok = p.tags.apply(n)
		return nil
	})
	if err != nil {
		p.log.Warn("tagging failed", "component", name, "error", err)
		return "", false
	}
	return tag, ok
}

// directState saves n's instance when it defines a state. The check runs
// under guard since it calls into the instance.
func (p *pass) directState(n *fiber.Node, name string, data *snapshot.Data) (state snapshot.State, ok bool) {
	err := p.guard(func() error {
		if !classify.HasDirectState(n) {
			return nil
		}
		inst, _ := n.Instance()
		value, _ := inst.State()
		idx, err := p.b.store.SaveNew(inst)
		if err != nil {
			return err
		}
		value = p.b.extractor.CopyValue(value)
		data.SetIndex(idx)
		data.SetState(value)
		state = snapshot.Value(value)
		ok = true
		return nil
	})
	if err != nil {
		p.failed(FailureDirectState, name, err)
		return snapshot.State{}, false
	}
	return state, ok
}

// chainedState saves every state hook of n and names it. On failure the
// node gets no hook state; indices saved before the failure stay issued.
func (p *pass) chainedState(n *fiber.Node, name string, data *snapshot.Data) (state snapshot.State, ok bool) {
	var (
		hooksState = make(map[string]any)
		hooksIndex []int
		entries    []snapshot.HookEntry
	)
	err := p.guard(func() error {
		states, err := p.b.extractor.GetHooksStateAndUpdateMethod(n.HeadHook())
		if err != nil {
			return err
		}
		var source string
		if n.ElementType != nil {
			source = n.ElementType.Source
		}
		names := hooknames.Pad(p.b.names.Resolve(source, len(states)), len(states))

		for i, hs := range states {
			idx, err := p.b.store.SaveNew(hs.Mutator)
			if err != nil {
				return fmt.Errorf("hook %d: %w", i, err)
			}
			value := p.b.extractor.CopyValue(hs.State)
			hooksIndex = append(hooksIndex, idx)
			hooksState[names[i]] = value
			entries = append(entries, snapshot.HookEntry{Name: names[i], Value: value})
		}
		return nil
	})
	if err != nil {
		p.failed(FailureHooks, name, err)
		return snapshot.State{}, false
	}

	data.HooksState = hooksState
	data.HooksIndex = hooksIndex
	return snapshot.Hooks(entries), true
}

// guard runs fn, turning a panic in host-provided code into an error.
func (p *pass) guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.ErrExtractionPanic.WithDetailsf("%v", r)
		}
	}()
	return fn()
}

func (p *pass) failed(kind, component string, err error) {
	if errors.Is(err, domain.ErrExtractionPanic) {
		kind = FailurePanic
	}
	p.stats.fail(kind)
	p.log.Warn("state extraction failed",
		"component", component,
		"kind", kind,
		"error", err,
	)
}

func copyTiming(d *snapshot.Data, t *fiber.Timing) {
	if t == nil {
		return
	}
	timing := *t
	d.ActualDuration = &timing.ActualDuration
	d.ActualStartTime = &timing.ActualStartTime
	d.SelfBaseDuration = &timing.SelfBaseDuration
	d.TreeBaseDuration = &timing.TreeBaseDuration
}
