/*
Package dotty outputs the internal structure of a red-black tree in Graphviz
DOT format (for debugging and documentation purposes).

The package uses only the inspection API of package rbtree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dotty

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to the global core-tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Options control the DOT output. A nil *Options selects the defaults.
type Options struct {
	Name          string // graph name, defaults to "rbtree"
	ShowSentinels bool   // draw sentinel leaves as small black boxes
	FontName      string // defaults to Arial
}

func (opts *Options) normalized() Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Name == "" {
		o.Name = "rbtree"
	}
	if o.FontName == "" {
		o.FontName = "Arial"
	}
	return o
}

type nodeids struct {
	idTable map[*rbtree.Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*rbtree.Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *rbtree.Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *rbtree.Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Write outputs tree to w in Graphviz DOT format. Every key becomes a circle
// filled with the color of its node, edges point from parents to children.
func Write(tree *rbtree.Tree, w io.Writer, opts *Options) error {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", rbtree.ErrIllegalArguments)
	}
	o := opts.normalized()
	var nodelist, edgelist strings.Builder
	ids := newtable()
	nilcnt := 0
	err := tree.Walk(func(node *rbtree.Node, depth int) error {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%d\"%s];\n", ID, node.Key(), nodeDotStyles(node))
		for _, child := range [2]*rbtree.Node{node.Left(), node.Right()} {
			if child.IsSentinel() {
				if o.ShowSentinels {
					nilcnt++
					nilid := fmt.Sprintf("nil%d", nilcnt)
					fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilid, sentinelNode())
					fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\";\n", ID, nilid)
				}
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	var out strings.Builder
	fmt.Fprintf(&out, "strict digraph %q {\n", o.Name)
	fmt.Fprintf(&out, "\tnode [fontname=%s,fontsize=12];\n", o.FontName)
	out.WriteString(nodelist.String())
	out.WriteString(edgelist.String())
	out.WriteString("}\n")
	_, err = io.WriteString(w, out.String())
	return err
}

func sentinelNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.15]"
}

func nodeDotStyles(node *rbtree.Node) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if node.Color() == rbtree.Red {
		s += ",color=\"#b00000\",fillcolor=\"#e02020\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}
