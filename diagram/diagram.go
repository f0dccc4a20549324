package diagram

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"entropy/model"
)

// New builds the temperature-entropy plot for one computed process.
func New(res model.ProcessResult, curve model.TSCurve) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = fmt.Sprintf("%s Process T-S Diagram", res.ProcessType)
	p.X.Label.Text = "Entropy (J/K)"
	p.Y.Label.Text = "Temperature (K)"
	xy := make(plotter.XYs, len(curve))
	for i, pt := range curve {
		xy[i].X = pt.S
		xy[i].Y = pt.T
	}
	err = plotutil.AddLinePoints(p, "Process", xy)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// WritePNG renders the T-S diagram for res to w.
func WritePNG(w io.Writer, res model.ProcessResult, curve model.TSCurve) error {
	p, err := New(res, curve)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(6*vg.Inch, 4.5*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
