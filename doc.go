// Package roboviz displays 2D occupancy-grid maps and robot poses for
// robotics and SLAM demonstrations. It is a presentation layer: pose and
// map data are produced elsewhere and handed in each frame.
//
//   - [Visualizer]: pose-only view with a centered world origin
//   - [MapVisualizer]: grayscale occupancy grid with the pose on top
//   - [Scene]: the retained drawing state, usable headless
//
// A visualizer owns one window for its lifetime. Calls are synchronous
// and must come from a single goroutine; each redraw briefly yields to
// the windowing event pump so close and key events are processed.
//
//	viz, err := roboviz.NewMapVisualizer(800, 32.0, "SLAM", roboviz.WithTrajectory())
//	if err != nil {
//	    return err
//	}
//	defer viz.Close()
//	for {
//	    if err := viz.Display(x, y, theta, mapBytes); err != nil {
//	        break // window closed or interrupted
//	    }
//	}
package roboviz
