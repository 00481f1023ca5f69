package diag

import (
	"testing"

	"src.marq.sh/pkg/tt"
)

func TestDiag(t *testing.T) {
	d := NewError(Ranging{2, 4}, "expected %s, found %s", "length", "string")
	tt.Test(t, tt.Fn("Diag.Error", Diag.Error), tt.Table{
		tt.Args(d).Rets("error: 2-4: expected length, found string"),
		tt.Args(NewWarning(PointRanging(7), "clamped")).Rets("warning: 7-7: clamped"),
	})
	tt.Test(t, tt.Fn("Diag.Show", Diag.Show), tt.Table{
		tt.Args(d, false).Rets("error: expected length, found string (at 2-4)"),
		tt.Args(d, true).Rets("\033[31;1merror\033[m: expected length, found string (at 2-4)"),
	})
}

func TestLevelString(t *testing.T) {
	tt.Test(t, tt.Fn("Level.String", Level.String), tt.Table{
		tt.Args(Warning).Rets("warning"),
		tt.Args(Error).Rets("error"),
		tt.Args(Level(9)).Rets("level(9)"),
	})
}
