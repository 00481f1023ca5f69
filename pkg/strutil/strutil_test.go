package strutil

import (
	"math"
	"testing"

	"src.marq.sh/pkg/tt"
)

func TestFormatFloat(t *testing.T) {
	tt.Test(t, tt.Fn("FormatFloat", FormatFloat), tt.Table{
		tt.Args(12.4).Rets("12.4"),
		tt.Args(2.0).Rets("2.0"),
		tt.Args(-3.0).Rets("-3.0"),
		tt.Args(0.5).Rets("0.5"),
		tt.Args(1e20).Rets("1e+20"),
		tt.Args(0.00001).Rets("1e-05"),
		tt.Args(math.Inf(1)).Rets("+Inf"),
		tt.Args(math.NaN()).Rets("NaN"),
	})
}

func TestQuote(t *testing.T) {
	tt.Test(t, tt.Fn("Quote", Quote), tt.Table{
		tt.Args("").Rets(`""`),
		tt.Args("hello").Rets(`"hello"`),
		tt.Args(`say "hi"`).Rets(`"say \"hi\""`),
		tt.Args("a\\b").Rets(`"a\\b"`),
		tt.Args("line\n\ttab").Rets(`"line\n\ttab"`),
		tt.Args("\x00").Rets(`"\x00"`),
		tt.Args("\xff").Rets(`"\xff"`),
		tt.Args("\u200b").Rets(`"\u200b"`),
		tt.Args("你好").Rets(`"你好"`),
	})
}
