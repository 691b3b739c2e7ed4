package segtree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the implicit tree of tr in Graphviz DOT format
// (for debugging purposes). Padding slots are drawn as empty circles,
// slots with a pending action are highlighted.
func ToDot[T any](tr Walker[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	tr.Walk(func(nv NodeView[T]) bool {
		if nv.Slot > 1 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", nv.Slot/2, nv.Slot)
		}
		if nv.Padding {
			fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nv.Slot, emptyNode())
			return true
		}
		highlight := nv.HasPending
		label := fmt.Sprintf("%v\\n[%d..%d)", nv.Value, nv.Lo, nv.Hi)
		if highlight {
			label += fmt.Sprintf("\\n⟨%s⟩", nv.Pending)
		}
		label = strings.ReplaceAll(label, "\"", "\\\"")
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", nv.Slot, label,
			nodeDotStyles(nv.Depth, nv.IsLeaf(), highlight))
		return true
	})
	tracer().Debugf("segtree DOT: %d bytes of nodes", nodelist.Len())
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(depth int, isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if depth >= len(hexcolors) {
		depth = len(hexcolors) - 1
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolors[depth])
	} else {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[depth])
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66",
	"#FF9944", "#FF8822", "#FF7700", "#ff6600"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
