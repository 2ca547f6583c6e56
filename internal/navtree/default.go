package navtree

// Default returns the sidebar of the algorithms study site.
func Default() *Tree {
	return &Tree{
		NestedDir: "patterns",
		Top: []Link{
			{Label: "🏠 Home Dashboard", Href: "index.html"},
		},
		Sections: []Section{
			{
				Title: "Linear Data Structures",
				Links: []Link{
					{Label: "Linked Lists", Href: "patterns/linked-lists.html"},
					{Label: "↳ Visualizer: Reversal", Href: "patterns/linked-list-reversal.html", Indent: 1},
					{Label: "↳ Visualizer: Operations", Href: "patterns/linked-list-visualizer.html", Indent: 1},
					{Label: "Stacks", Href: "patterns/stack.html"},
					{Label: "↳ Visualizer: Stack", Href: "patterns/stack-visualizer.html", Indent: 1},
					{Label: "Queues", Href: "patterns/queues.html"},
					{Label: "↳ Visualizer: Queue", Href: "patterns/queue-visualizer.html", Indent: 1},
				},
			},
			{
				Title: "Non-Linear Data Structures",
				Links: []Link{
					{Label: "Hash Maps", Href: "patterns/hash-maps.html"},
					{Label: "↳ Visualizer: Hash Map", Href: "patterns/hash-map-visualizer.html", Indent: 1},
					{Label: "Trees", Href: "patterns/trees.html"},
					{Label: "↳ Visualizer: BST", Href: "patterns/bst-visualizer.html", Indent: 1},
					{Label: "Graphs", Href: "patterns/graphs.html"},
					{Label: "↳ Visualizer: Graph Algo", Href: "patterns/graph-visualizer.html", Indent: 1},
					{Label: "↳ Visualizer: BFS", Href: "patterns/bfs-graph.html", Indent: 1},
					{Label: "↳ Visualizer: Pathfinding", Href: "patterns/pathfinding-visualizer.html", Indent: 1},
					{Label: "↳ Visualizer: Topo Sort", Href: "patterns/topological-sort-visualizer.html", Indent: 1},
					{Label: "↳ Visualizer: MST", Href: "patterns/mst-visualizer.html", Indent: 1},
					{Label: "↳ Visualizer: Union-Find", Href: "patterns/union-find.html", Indent: 1},
					{Label: "Heaps", Href: "patterns/heap.html"},
					{Label: "↳ Visualizer: Heap", Href: "patterns/heap-visualizer.html", Indent: 1},
					{Label: "Tries", Href: "patterns/tries.html"},
					{Label: "↳ Visualizer: Trie", Href: "patterns/trie-visualizer.html", Indent: 1},
					{Label: "Segment Trees", Href: "patterns/segment-tree.html"},
				},
			},
			{
				Title: "Algorithms",
				Links: []Link{
					{Label: "Sorting & Search", Href: "patterns/sort-search.html"},
					{Label: "↳ Visualizer: Sorting", Href: "patterns/sorting-visualizer.html", Indent: 1},
					{Label: "↳ Visualizer: Binary Search", Href: "patterns/binary-search-visualizer.html", Indent: 1},
					{Label: "Dynamic Programming", Href: "patterns/dynamic-programming.html"},
					{Label: "↳ Visualizer: Knapsack", Href: "patterns/knapsack-dp.html", Indent: 1},
					{Label: "↳ Visualizer: LCS", Href: "patterns/dp-lcs.html", Indent: 1},
					{Label: "Backtracking", Href: "patterns/backtracking.html"},
					{Label: "↳ Visualizer: N-Queens", Href: "patterns/n-queens.html", Indent: 1},
					{Label: "↳ Visualizer: Sudoku", Href: "patterns/sudoku-solver.html", Indent: 1},
					{Label: "↳ Visualizer: Maze", Href: "patterns/maze-generator.html", Indent: 1},
					{Label: "Greedy", Href: "patterns/greedy.html"},
					{Label: "Bit Manipulation", Href: "patterns/bit-manipulation.html"},
					{Label: "Math & Geometry", Href: "patterns/math-geometry.html"},
				},
			},
			{
				Title: "Patterns",
				Links: []Link{
					{Label: "Two Pointers", Href: "patterns/two-pointers.html"},
					{Label: "↳ Visualizer: Two Pointers", Href: "patterns/two-pointers-visualizer.html", Indent: 1},
					{Label: "Sliding Window", Href: "patterns/sliding-window.html"},
					{Label: "↳ Visualizer: Sliding Window", Href: "patterns/sliding-window-visualizer.html", Indent: 1},
					{Label: "Fast & Slow Pointers", Href: "patterns/fast-slow-pointers.html"},
					{Label: "Binary Search", Href: "patterns/binary-search.html"},
					{Label: "Intervals", Href: "patterns/intervals.html"},
					{Label: "Prefix Sum", Href: "patterns/prefix-sum.html"},
				},
			},
			{
				Title: "System Design",
				Links: []Link{
					{Label: "System Design Basics", Href: "system-design.html"},
					{Label: "Masterclass (Part 1)", Href: "system-design-masterclass.html"},
					{Label: "System Design Patterns", Href: "system-design-patterns.html"},
					{Label: "System Design Checklist", Href: "system-design-checklist.html"},
					{Label: "Case Studies", Href: "system-design-case-studies.html"},
					{Label: "System Design Quiz", Href: "system-design-quiz.html"},
				},
			},
			{
				Title: "Guides & Tools",
				Links: []Link{
					{Label: "Pattern Recognition", Href: "pattern-recognition-guide.html"},
					{Label: "Interview Approach", Href: "interview-approach.html"},
					{Label: "Complexity Analysis", Href: "complexity-guide.html"},
					{Label: "DSA Roadmap", Href: "dsa-roadmap.html"},
					{Label: "Mock Interview Checklist", Href: "mock-interview-checklist.html"},
					{Label: "CS Fundamentals", Href: "cs-fundamentals.html"},
					{Label: "Go Language Guide", Href: "golang-guide.html"},
					{Label: "OSI Model Deep Dive", Href: "osi-layers.html"},
					{Label: "TCP/IP Model Deep Dive", Href: "tcp-ip-model.html"},
					{Label: "Go Interview Questions", Href: "go-interview-questions.html"},
					{Label: "Google Interview Questions", Href: "google-interview-questions.html"},
					{Label: "Amazon Two Pointers Questions", Href: "amazon-two-pointers-questions.html"},
					{Label: "📅 14-Day Interview Plan", Href: "go-interview-plan.html"},
					{Label: "🗺️ Google Roadmap", Href: "google-roadmap.html"},
					{Label: "Pattern Cheat Sheet", Href: "cheat-sheet.html"},
					{Label: "📊 My Dashboard", Href: "dashboard.html"},
					{Label: "📱 Mobile Access", Href: "mobile-access.html"},
				},
			},
		},
		Skip: []string{
			"index.html",
			"interview-approach.html",
			"amazon-two-pointers-questions.html",
			"patterns/linked-lists.html",
			// Visualizers with custom sidebars.
			"patterns/sorting-visualizer.html",
			"patterns/graph-visualizer.html",
			"patterns/pathfinding-visualizer.html",
			"patterns/topological-sort-visualizer.html",
			"patterns/mst-visualizer.html",
			"patterns/union-find.html",
			"patterns/heap-visualizer.html",
			"patterns/trie-visualizer.html",
			"patterns/stack-visualizer.html",
			"patterns/queue-visualizer.html",
			"patterns/linked-list-reversal.html",
			"patterns/linked-list-visualizer.html",
			"patterns/n-queens.html",
			"patterns/sudoku-solver.html",
			"patterns/maze-generator.html",
			"patterns/two-pointers-visualizer.html",
			"patterns/sliding-window-visualizer.html",
			"patterns/binary-search-visualizer.html",
			"patterns/hash-map-visualizer.html",
			"patterns/bst-visualizer.html",
			"patterns/bfs-graph.html",
			"patterns/dp-lcs.html",
		},
	}
}
