package hooknames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const todoSource = `function TodoList() {
  const [todos, setTodos] = useState([]);
  useEffect(() => { document.title = todos.length; }, [todos]);
  const [filter, dispatch] = React.useReducer(reducer, 'all');
  let [ draft ] = useState('');
  const ref = useRef(null);
  return null;
}`

const transpiledSource = `function Counter() {
  var _useState = useState(0),
    _useState2 = _slicedToArray(_useState, 2),
    count = _useState2[0],
    setCount = _useState2[1];
  var _useState3 = useState(false),
    _useState4 = _slicedToArray(_useState3, 2),
    open = _useState4[0];
  return null;
}`

func TestScanner_Names(t *testing.T) {
	var s Scanner
	assert.Equal(t, []string{"todos", "filter", "draft"}, s.Names(todoSource))
	assert.Equal(t, []string{"count", "open"}, s.Names(transpiledSource))
	assert.Empty(t, s.Names("function Plain() { return null }"))
	assert.Empty(t, s.Names(""))
}

func TestScanner_Resolve(t *testing.T) {
	var s Scanner
	assert.Equal(t, []string{"todos", "filter", "draft"}, s.Resolve(todoSource, 3))
	assert.Equal(t, []string{"todos", "filter", "draft", "state3"}, s.Resolve(todoSource, 4))
	assert.Equal(t, []string{"todos"}, s.Resolve(todoSource, 1))
	assert.Equal(t, []string{"state0", "state1"}, s.Resolve("", 2))
	assert.Empty(t, s.Resolve(todoSource, 0))
}

func TestScanner_IgnoresCommentsAndStrings(t *testing.T) {
	src := `function Todos() {
  // const [old, setOld] = useState(0)
  const [todos, setTodos] = useState([]);
  const hint = "const [fake, setFake] = useState(1)";
  /* let [gone] = React.useReducer(r) */
  const [filter, setFilter] = useState('all');
  return <ul title={hint}>{todos.length}</ul>;
}`
	var s Scanner
	assert.Equal(t, []string{"todos", "filter"}, s.Resolve(src, 2))
}

func TestScanner_Bindings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"default value", "function A() { const [n = 1, setN] = useState(); }", []string{"n"}},
		{"elided state", "function A() { const [, setN] = useState(0); const [m] = useState(1); }", []string{"", "m"}},
		{"not a state hook", "function A() { const [a, b] = useMemo(() => [1, 2]); }", nil},
		{"unparsable", "function (", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scanner{}.Names(tt.src))
		})
	}
	assert.Equal(t, []string{"state0", "m"}, Scanner{}.Resolve("function A() { const [, setN] = useState(0); const [m] = useState(1); }", 2))
}

func TestPad(t *testing.T) {
	assert.Equal(t, []string{"a", "state1", "c"}, Pad([]string{"a", "", "c"}, 3))
	assert.Equal(t, []string{}, Pad(nil, -1))
}

func TestCached(t *testing.T) {
	calls := 0
	next := ResolverFunc(func(source string, count int) []string {
		calls++
		return Scanner{}.Resolve(source, count)
	})
	c, err := NewCached(next, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, []string{"count", "open"}, c.Resolve(transpiledSource, 2))
	}
	assert.Equal(t, 1, calls)

	// A different count is a different entry.
	assert.Equal(t, []string{"count"}, c.Resolve(transpiledSource, 1))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, c.Len())

	// Oldest entry is evicted at capacity.
	c.Resolve(todoSource, 3)
	assert.Equal(t, 2, c.Len())
	c.Resolve(transpiledSource, 2)
	assert.Equal(t, 4, calls)
}
