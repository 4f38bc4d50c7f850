package fiber

import (
	"strconv"
	"strings"
)

// Kind is the host runtime's work tag for a node.
//
// Numeric values match the host runtime so trees captured from it can be
// decoded without a translation table.
type Kind int

const (
	FunctionComponent        Kind = 0
	ClassComponent           Kind = 1
	IndeterminateComponent   Kind = 2 // function or class, not yet resolved
	HostRoot                 Kind = 3
	HostPortal               Kind = 4
	HostComponent            Kind = 5 // StateNode is the rendered element
	HostText                 Kind = 6
	Fragment                 Kind = 7
	Mode                     Kind = 8
	ContextConsumer          Kind = 9
	ContextProvider          Kind = 10
	ForwardRef               Kind = 11
	Profiler                 Kind = 12
	SuspenseComponent        Kind = 13
	MemoComponent            Kind = 14
	SimpleMemoComponent      Kind = 15
	LazyComponent            Kind = 16
	IncompleteClassComponent Kind = 17
	DehydratedFragment       Kind = 18
	SuspenseListComponent    Kind = 19
	ScopeComponent           Kind = 21
	OffscreenComponent       Kind = 22
	LegacyHiddenComponent    Kind = 23
)

var kindNames = map[Kind]string{
	FunctionComponent:        "FunctionComponent",
	ClassComponent:           "ClassComponent",
	IndeterminateComponent:   "IndeterminateComponent",
	HostRoot:                 "HostRoot",
	HostPortal:               "HostPortal",
	HostComponent:            "HostComponent",
	HostText:                 "HostText",
	Fragment:                 "Fragment",
	Mode:                     "Mode",
	ContextConsumer:          "ContextConsumer",
	ContextProvider:          "ContextProvider",
	ForwardRef:               "ForwardRef",
	Profiler:                 "Profiler",
	SuspenseComponent:        "SuspenseComponent",
	MemoComponent:            "MemoComponent",
	SimpleMemoComponent:      "SimpleMemoComponent",
	LazyComponent:            "LazyComponent",
	IncompleteClassComponent: "IncompleteClassComponent",
	DehydratedFragment:       "DehydratedFragment",
	SuspenseListComponent:    "SuspenseListComponent",
	ScopeComponent:           "ScopeComponent",
	OffscreenComponent:       "OffscreenComponent",
	LegacyHiddenComponent:    "LegacyHiddenComponent",
}

// String returns the tag name, or "Kind(<n>)" for tags this package does not know.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Known reports whether k is one of the declared tags.
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind accepts a tag name (case-insensitive) or its decimal value.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		k := Kind(n)
		return k, k.Known()
	}
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, true
		}
	}
	return 0, false
}
