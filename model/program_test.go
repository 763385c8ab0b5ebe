// Package model_test exercises the builder surface end to end.
package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/milp/ip"
	"github.com/katalvlaran/milp/lp"
	"github.com/katalvlaran/milp/model"
)

// ProgramSuite runs the builder scenarios under one setup.
type ProgramSuite struct {
	suite.Suite
}

// TestNamesGetDenseIndices verifies first-appearance ordering across the
// objective and constraints.
func (s *ProgramSuite) TestNamesGetDenseIndices() {
	p := model.New(lp.Max, model.Term{Coef: 1, Name: "b"}, model.Term{Coef: 1, Name: "a"}).
		Constrain([]model.Term{{Coef: 1, Name: "c"}, {Coef: 1, Name: "b"}}, "<=", 4)

	vars := p.Vars()
	require.Equal(s.T(), 3, vars.Count())
	require.Equal(s.T(), 0, vars.Index("b"))
	require.Equal(s.T(), 1, vars.Index("a"))
	require.Equal(s.T(), 2, vars.Index("c"))

	name, ok := vars.Name(2)
	require.True(s.T(), ok)
	require.Equal(s.T(), "c", name)

	_, ok = vars.Name(3)
	require.False(s.T(), ok)
}

// TestRepeatedTermsAccumulate: x + x is 2x, in the objective and in
// constraints alike.
func (s *ProgramSuite) TestRepeatedTermsAccumulate() {
	sol, err := model.New(lp.Max, model.Term{Coef: 1, Name: "x"}, model.Term{Coef: 1, Name: "x"}).
		Constrain([]model.Term{{Coef: 0.5, Name: "x"}, {Coef: 0.5, Name: "x"}}, "<=", 3).
		Solve(ip.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), ip.Bounded, sol.Status)
	require.InDelta(s.T(), 6, sol.Extremum, 1e-6) // max 2x s.t. x ≤ 3
	require.Equal(s.T(), int64(3), sol.Assignment["x"])
}

// TestSolveByName covers the headline path: named solve with branching.
func (s *ProgramSuite) TestSolveByName() {
	sol, err := model.New(lp.Max,
		model.Term{Coef: 3, Name: "x"},
		model.Term{Coef: 1, Name: "y"},
	).
		Constrain([]model.Term{{Coef: 4, Name: "x"}, {Coef: 2, Name: "y"}}, "<=", 11).
		Constrain([]model.Term{{Coef: 1, Name: "x"}}, ">=", 1).
		Constrain([]model.Term{{Coef: 1, Name: "x"}}, "<=", 2).
		Solve(ip.DefaultOptions())

	require.NoError(s.T(), err)
	require.Equal(s.T(), ip.Bounded, sol.Status)
	require.InDelta(s.T(), 7, sol.Extremum, 1e-6)
	require.Equal(s.T(), int64(2), sol.Assignment["x"])
	require.Equal(s.T(), int64(1), sol.Assignment["y"])
	require.Len(s.T(), sol.Assignment, 2)
}

// TestUnknownRelationIsStaged: the bad call poisons the chain, later
// calls are ignored, and Solve reports the sentinel without solving.
func (s *ProgramSuite) TestUnknownRelationIsStaged() {
	sol, err := model.New(lp.Max, model.Term{Coef: 1, Name: "x"}).
		Constrain([]model.Term{{Coef: 1, Name: "x"}}, "==", 1). // wrong spelling
		Constrain([]model.Term{{Coef: 1, Name: "x"}}, "<=", 5).
		Solve(ip.DefaultOptions())

	require.ErrorIs(s.T(), err, model.ErrUnknownRelation)
	require.Zero(s.T(), sol)
}

// TestEmptyObjective surfaces the lp sentinel through the façade.
func (s *ProgramSuite) TestEmptyObjective() {
	_, err := model.New(lp.Min).Solve(ip.DefaultOptions())
	require.ErrorIs(s.T(), err, lp.ErrEmptyObjective)
}

// TestNaNCoefficient fails before any solving work.
func (s *ProgramSuite) TestNaNCoefficient() {
	_, err := model.New(lp.Min, model.Term{Coef: math.NaN(), Name: "x"}).
		Solve(ip.DefaultOptions())
	require.ErrorIs(s.T(), err, lp.ErrBadCoefficient)
}

// TestInfeasibleHasNoAssignment mirrors the integer-cut instance.
func (s *ProgramSuite) TestInfeasibleHasNoAssignment() {
	sol, err := model.New(lp.Max,
		model.Term{Coef: 3, Name: "x"},
		model.Term{Coef: 1, Name: "y"},
	).
		Constrain([]model.Term{{Coef: 4, Name: "x"}, {Coef: 2, Name: "y"}}, "<=", 11).
		Constrain([]model.Term{{Coef: 1, Name: "x"}}, ">=", 2).
		Constrain([]model.Term{{Coef: 1, Name: "y"}}, ">=", 2).
		Solve(ip.DefaultOptions())

	require.NoError(s.T(), err)
	require.Equal(s.T(), ip.Infeasible, sol.Status)
	require.Nil(s.T(), sol.Assignment)
}

// TestStringRendering: stable order, original sense, two decimals.
func (s *ProgramSuite) TestStringRendering() {
	p := model.New(lp.Max, model.Term{Coef: 3, Name: "x"}, model.Term{Coef: 1, Name: "y"}).
		Constrain([]model.Term{{Coef: 4, Name: "x"}, {Coef: 2, Name: "y"}}, "<=", 11)

	require.Equal(s.T(), "max 3.00[x] + 1.00[y]\n4.00[x] + 2.00[y] <= 11.00\n", p.String())
}

func TestProgramSuite(t *testing.T) {
	suite.Run(t, new(ProgramSuite))
}
