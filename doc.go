// Package rogue is a character-grid display framework on the GPU.
//
// An application implements the App contract (Start, Tick, Present)
// and hands it to Run together with a Config. Run opens a window,
// builds the render surface, and drives the loop: each iteration
// ticks the simulation with a snapshot of the input state, lets the
// application paint the cell grid, and submits the grid to the GPU
// for presentation.
//
//	type game struct{}
//
//	func (g *game) Start()                            {}
//	func (g *game) Tick(rogue.SimInput) rogue.TickResult { return rogue.Continue }
//	func (g *game) Present(p rogue.PresentInput) {
//		p.Image.Clear(grid.White, grid.Black)
//		p.Image.DrawString(grid.Pt(1, 1), "Hello", grid.White, grid.Black)
//	}
//
//	func main() {
//		cfg := rogue.DefaultConfig().WithTitle("hello").WithInnerSize(1024, 768)
//		if err := rogue.Run(cfg, &game{}); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// By default rogue produces no log output; call SetLogger to enable
// structured logging across all subpackages.
package rogue
