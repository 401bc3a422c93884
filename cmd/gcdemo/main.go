// gcdemo is an illustrative caller of the gckit collector. The collector's
// contract lives in the gc package; everything here is scaffolding around
// Alloc/Collect calls.
package main

func main() {
	execute()
}
