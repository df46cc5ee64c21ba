package wfc_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/judge"
	"github.com/katalvlaran/tilewfc/pattern"
	"github.com/katalvlaran/tilewfc/wfc"
)

// ExampleEngine_Run collapses a small strip with the greedy judge.
// "grass"(1) goes anywhere; "road"(2) weighs more but only continues
// as road to its left and right.
func ExampleEngine_Run() {
	v, _ := pattern.NewPattern("tile.png", 1)
	grass, _ := pattern.NewGroup(1, "grass", 1, []string{"ground"}, []pattern.Pattern{v})
	road, _ := pattern.NewGroup(2, "road", 5, []string{"ground"}, []pattern.Pattern{v})

	repo := pattern.NewRepository()
	_ = repo.Register([]*pattern.Group{grass, road})
	_ = repo.AttachRules(1, pattern.RuleSpec{
		pattern.Left:  {pattern.UIDRef(1)},
		pattern.Right: {pattern.UIDRef(1)},
	})
	_ = repo.AttachRules(2, pattern.RuleSpec{
		pattern.Left:  {pattern.UIDRef(2)},
		pattern.Right: {pattern.UIDRef(2)},
	})
	fmt.Println(repo.Validate().Result())

	g, _ := grid.New(4, 1, repo)
	e, _ := wfc.New(g, judge.NewGreedy())
	fmt.Println(e.Run(), e.Steps())
	fmt.Print(g)
	// Output:
	// success
	// true 4
	// 02 | 02 | 02 | 02
}

// ExampleFailure shows how a contradiction surfaces to the caller.
func ExampleFailure() {
	v, _ := pattern.NewPattern("tile.png", 1)
	lone, _ := pattern.NewGroup(7, "lone", 1, nil, []pattern.Pattern{v})
	repo := pattern.NewRepository()
	_ = repo.Register([]*pattern.Group{lone})
	_ = repo.AttachRules(7, pattern.RuleSpec{})

	g, _ := grid.New(2, 1, repo)
	e, _ := wfc.New(g, judge.NewRandom(0))
	if !e.Run() {
		fmt.Println(e.Err())
		fmt.Println(errors.Is(e.Err(), wfc.ErrZeroEntropy))
	}
	// Output:
	// wfc: generation failed at (0,0): zero_entropy
	// true
}
