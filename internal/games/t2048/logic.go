package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4x4 grid of tile values, 0 for empty.
type Board [BoardSize][BoardSize]int

// Cell addresses one board position.
type Cell struct{ X, Y int }

// slideRow compacts a row to the left and merges equal neighbours. A tile
// produced by a merge does not merge again in the same move, so
// [2,2,4,0] becomes [4,4,0,0].
// Returns the updated row and the score gained from merges.
func slideRow(row [BoardSize]int) (result [BoardSize]int, score int) {
	writePos := 0
	merged := false // result[writePos-1] came from a merge

	for _, v := range row {
		if v == 0 {
			continue
		}
		if writePos > 0 && !merged && result[writePos-1] == v {
			result[writePos-1] *= 2
			score += result[writePos-1]
			merged = true
			continue
		}
		result[writePos] = v
		writePos++
		merged = false
	}

	return result, score
}

func reverseRow(row [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = row[BoardSize-1-i]
	}
	return result
}

func transpose(board Board) Board {
	var result Board
	for y := range BoardSize {
		for x := range BoardSize {
			result[y][x] = board[x][y]
		}
	}
	return result
}

// slideLeft applies slideRow to every row, reversing rows first when
// reverse is set.
func slideLeft(board Board, reverse bool) (Board, int) {
	var out Board
	total := 0
	for y, row := range board {
		if reverse {
			row = reverseRow(row)
		}
		slid, score := slideRow(row)
		if reverse {
			slid = reverseRow(slid)
		}
		out[y] = slid
		total += score
	}
	return out, total
}

// Slide performs a move in the given direction.
// Returns the new board, score gained, and whether the board changed.
func Slide(board Board, dir Direction) (Board, int, bool) {
	var (
		out   Board
		score int
	)
	switch dir {
	case DirLeft:
		out, score = slideLeft(board, false)
	case DirRight:
		out, score = slideLeft(board, true)
	case DirUp:
		out, score = slideLeft(transpose(board), false)
		out = transpose(out)
	case DirDown:
		out, score = slideLeft(transpose(board), true)
		out = transpose(out)
	default:
		return board, 0, false
	}
	return out, score, out != board
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []Cell {
	var cells []Cell
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if x < BoardSize-1 && board[y][x+1] == val {
				return true
			}
			if y < BoardSize-1 && board[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(board Board) bool {
	return len(EmptyCells(board)) > 0 || HasPossibleMerge(board)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for _, row := range board {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}
