package shell

import "io"

const usageText = `Moves:
  play R:A6,E:A7     put R on A6 and E on A7 (the word "play" is optional)
  exchange ZQ        swap tiles with the bag (also: exch ZQ)
  pass               give up the turn

Other commands:
  board              show the board again
  hint [-n 10]       list words your rack can spell
  help               show this text
  quit               stop the game

Squares are a column A-O then a row 1-15; H8 is the center.
`

func usage(w io.Writer) {
	io.WriteString(w, usageText)
}
