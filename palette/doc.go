// Package palette generates sets of colors that are pairwise distinguishable
// under Euclidean distance in RGB space.
//
// Generation is rejection sampling: candidates come from a Sampler and are
// kept only when their distance to every color accepted so far lies within
// [MinDiff, MaxDiff]. Parameters are validated up front and the loop is
// bounded by a cap on consecutive rejections, so an infeasible band yields
// ErrInfeasible rather than a hang.
//
//	p, err := palette.Generate(8, palette.WithMinDiff(0.4))
//	if err != nil {
//		return err
//	}
//	fmt.Println(p.Hex())
package palette
