// Package calc implements the interactive console collaborator around the
// matrix core: a numbered menu loop that reads matrix dimensions and
// whitespace-separated float rows, dispatches to the matrix kernels, and
// renders results through matrix.Format.
//
// The package never interprets core failures beyond display: every sentinel
// from the matrix package collapses to one generic failure line (singular
// inverse gets its own wording) and the loop continues. The sentinels stay
// distinguishable for callers that drive a Session programmatically.
package calc
