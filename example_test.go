package osl_test

import (
	"fmt"

	osl "github.com/Dennis-van-Gils/opensimplex-loops"
)

func ExampleTileable2DImage() {
	tile, err := osl.Tileable2DImage(64,
		osl.WithXStep(1.0/24),
		osl.WithVerbose(false),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(tile.Height(), tile.Width())
	// Output: 64 64
}

func ExampleLoopingAnimated2DImage() {
	stack, err := osl.LoopingAnimated2DImage(10, 32,
		osl.WithSeed(42),
		osl.WithVerbose(false),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(stack.Frames(), stack.Height(), stack.Width())
	// Output: 10 32 32
}
