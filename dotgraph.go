package keystone

import (
	"fmt"
	"sort"
	"strings"
)

// Dotgraph renders r's dependency graph (providers registered directly on
// r; ancestors are not walked) as Graphviz DOT, grounded in ferrunix-core's
// registry.rs::dotgraph, which does the same thing with petgraph's dot
// exporter and returns the same validate-then-render error shape. Transient
// nodes are drawn as plain boxes, singletons as bold boxes, so a quick look
// at the rendered graph tells you which nodes incur shared-construction
// ordering constraints.
func (r *Registry) Dotgraph() (string, error) {
	if err := r.ValidateAll(); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]TypeKey, 0, len(r.providers))
	for k := range r.providers {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	var b strings.Builder

	b.WriteString("digraph keystone {\n")
	b.WriteString("\trankdir=LR;\n")

	for _, k := range keys {
		p := r.providers[k]

		style := "solid"
		if p.lifetime == Singleton {
			style = "bold"
		}

		fmt.Fprintf(&b, "\t%q [shape=box, style=%s];\n", k.String(), style)
	}

	for _, k := range keys {
		p := r.providers[k]

		for _, d := range p.deps {
			if d.kind == depKindGroup {
				continue
			}

			fmt.Fprintf(&b, "\t%q -> %q;\n", k.String(), d.key.String())
		}
	}

	b.WriteString("}\n")

	return b.String(), nil
}
