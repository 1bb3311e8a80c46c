package samuel_test

import (
	"context"
	"fmt"

	"github.com/aretw0/samuel"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/generator"
)

func Example() {
	displayed, _ := domain.ParseSequence("b- y- b- y.")

	p := samuel.NewFromSnapshot(
		domain.Snapshot{BatteryCount: 5, ModuleCount: 6},
		samuel.WithGenerator(generator.NewFixed(displayed)),
	)

	stage, err := p.Advance(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(stage.Result.Modified.Tokens())
	fmt.Println(stage.Expected())
	// Output:
	// b. y- b- y-
	// Yellow dash
}

func ExampleExpectedSubmission() {
	displayed, _ := domain.ParseSequence("r- g. y.")
	snap := domain.Snapshot{ModuleNameContainsRed: true, BatteryCount: 1, TotalPorts: 3, SerialDigitSum: 12, ModuleCount: 9}
	cross := domain.CrossStageState{RedHasFailedToAppear: true}

	res, err := samuel.ExpectedSubmission(context.Background(), displayed, 2, snap, &cross)
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Trace[len(res.Trace)-1].Message)
	fmt.Println(res.Submission)
	// Output:
	// There are 3 ports, so the correct position to submit is 1.
	// Blue dash
}
