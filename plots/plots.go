/*
 * plots.go, part of qiskit-tutorials.
 *
 *
 * Copyright 2026 Raghav King <kingsraghav{at}gmailDOTcom>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package plots draws the figures the example programs produce: the
//optimizer convergence curve and the 2-dimensional view of a prepared
//dataset.
package plots

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Convergence saves a line plot of the objective value per optimizer
// iteration to plotname.png.
func Convergence(history []float64, title, plotname string) error {
	if len(history) == 0 {
		return fmt.Errorf("Convergence: no history to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Objective"
	p.Add(plotter.NewGrid())
	xys := make(plotter.XYs, len(history))
	for i, v := range history {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(l)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}

// Partition saves a scatter plot of the first two features of each class
// in a prepared set to plotname.png. Classes get one color each, in
// sorted label order.
func Partition(data map[string][][]float64, title, plotname string) error {
	if len(data) == 0 {
		return fmt.Errorf("Partition: no classes to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Feature 1"
	p.Y.Label.Text = "Feature 2"
	p.Add(plotter.NewGrid())
	labels := make([]string, 0, len(data))
	for l := range data {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	for key, label := range labels {
		vecs := data[label]
		xys := make(plotter.XYs, 0, len(vecs))
		for _, v := range vecs {
			if len(v) < 2 {
				return fmt.Errorf("Partition: class %s holds a vector with fewer than 2 features", label)
			}
			xys = append(xys, plotter.XY{X: v[0], Y: v[1]})
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = plotutil.Color(key)
		p.Add(s)
		p.Legend.Add(label, s)
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename)
}
