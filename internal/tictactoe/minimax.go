// Package tictactoe holds the exhaustive minimax search that picks the computer's move.
package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Kind tells a leaf evaluation apart from a move proposal.
type Kind int

const (
	KindLeaf Kind = iota
	KindProposal
)

func (that Kind) String() string {
	if that == KindProposal {
		return "proposal"
	}

	return "leaf"
}

// Result is the outcome of a search. Move is only meaningful for KindProposal.
type Result struct {
	Kind  Kind
	Move  entity.Move
	Score int
}

func leaf(score int) Result {
	return Result{Kind: KindLeaf, Score: score}
}

func (that Result) IsMove() bool {
	return that.Kind == KindProposal
}

func (that Result) String() string {
	if !that.IsMove() {
		return fmt.Sprintf("leaf(%d)", that.Score)
	}

	return fmt.Sprintf("%s=%d", that.Move, that.Score)
}

// Search runs a full minimax from the board with player to move.
// Computer maximizes and Human minimizes the score; on equal scores the
// earliest move in row-major order is kept.
// The board is mutated while searching and restored before Search returns.
func Search(board *entity.Board, depth int, player entity.Player) Result {
	if depth == 0 || board.IsTerminal() {
		return leaf(board.Evaluate())
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return leaf(board.Evaluate())
	}

	best := Result{Kind: KindProposal, Score: math.MaxInt}
	if player == entity.Computer {
		best.Score = math.MinInt
	}

	for _, move := range cells {
		var result Result

		board.Try(move, player, func() {
			result = Search(board, depth-1, player.Opponent())
		})

		result.Kind = KindProposal
		result.Move = move

		if better(player, result.Score, best.Score) {
			best = result
		}
	}

	return best
}

func better(player entity.Player, score, best int) bool {
	if player == entity.Computer {
		return score > best
	}

	return score < best
}

// BestMove searches the whole remaining tree for player.
// It panics if the game is already decided, the board is full or the marker counts
// show that player is not the one to move: callers check first.
func BestMove(board *entity.Board, player entity.Player) Result {
	if board.IsTerminal() {
		panic("tictactoe: search on a decided board")
	}

	// Players alternate, so the side to move has as many markers as the other side or one less.
	if lead := board.Count(player.Opponent()) - board.Count(player); lead < 0 || lead > 1 {
		panic(fmt.Sprintf("tictactoe: %s is not to move", player))
	}

	depth := len(board.EmptyCells())
	if depth == 0 {
		panic("tictactoe: search on a full board")
	}

	return Search(board, depth, player)
}
