// Package dag turns markdown task lists into the nodes and links of a
// Sankey diagram. Every list item of the form `* A > B` declares that task A
// depends on task B, so work flows from B into A.
package dag
