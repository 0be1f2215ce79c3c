// Package widgets builds reactive input widgets for interactive documents.
//
// Every widget is constructed from an ordered label→value option collection
// and a theme, and returns a handle exposing its rendered view and a signal
// holding the selected value(s). User interaction mutates the widget's
// internal index signal; an index↔value bridge propagates the change to the
// value signal, and vice versa for programmatic writes.
//
//	opts := widgets.NewOptions(
//	    widgets.Pair("good", 1),
//	    widgets.Pair("better", 2),
//	    widgets.Pair("amazing", 9001),
//	)
//	w, err := widgets.Dropdown(theme.Default(), opts).Label("Power").Build()
//	if err != nil {
//	    return err
//	}
//	w.Value().Observe(func(v int) { ... })
package widgets
