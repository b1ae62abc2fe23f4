// Command ntext prints JSON and YAML documents as compact single-line text.
package main

func main() {
	Execute()
}
