// Command sboard inspects Storyboard project documents.
package main

func main() {
	Execute()
}
