// Package picker provides a filterable, scrolling selection list for Bubble
// Tea programs. Only the rows inside the viewport are rendered, and the
// selection is always kept visible while the filter narrows the items.
package picker
