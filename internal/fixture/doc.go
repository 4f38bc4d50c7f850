// Package fixture loads live tree documents into fiber node graphs.
//
// A document lists nodes by id and links them with child and sibling ids,
// so it can describe any shape the host runtime produces, cycles included:
//
//	root: host
//	nodes:
//	  - id: host
//	    kind: HostRoot
//	    child: app
//	  - id: app
//	    kind: FunctionComponent
//	    type: {name: App, source: "const [todos, setTodos] = useState([])"}
//	    hooks:
//	      - {kind: useState, value: []}
//
// JSON documents are accepted as well. Class instances and hook queues of a
// loaded graph record every SetState call, so replaying a snapshot through
// the record store can be observed with Graph.Updates.
package fixture
