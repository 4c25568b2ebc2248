package sboard_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/sboard"
	"github.com/aretw0/sboard/internal/testutils"
	"github.com/aretw0/sboard/pkg/domain"
)

// ExampleLoad walks the shots of the master timeline and their panels.
func ExampleLoad() {
	p, err := sboard.Load(strings.NewReader(testutils.SampleProject))
	if err != nil {
		log.Fatal(err)
	}

	for scene, err := range p.Scenes() {
		if err != nil {
			log.Fatal(err)
		}
		r, _ := scene.TimelineRange()
		fmt.Printf("%s %s\n", scene.Name(), r)
		for panel, err := range scene.Panels() {
			if err != nil {
				log.Fatal(err)
			}
			tr, _ := panel.TimelineRange()
			fmt.Printf("  panel %d (%s): %s\n", panel.Number(), panel.UID(), tr)
		}
	}
	// Output:
	// shot1 100-109
	//   panel 1 (p1): 100-104
	//   panel 2 (p2): 104-110
	// shot2 110-117
	//   panel 1 (p3): 110-118
	// shot3 118-121
	//   panel 1 (p4): 118-122
}

// ExamplePanel_Layers shows the three ways to walk a panel's layer graph.
func ExamplePanel_Layers() {
	p, err := sboard.Load(strings.NewReader(testutils.SampleProject))
	if err != nil {
		log.Fatal(err)
	}
	panel, err := p.Panel("p1")
	if err != nil {
		log.Fatal(err)
	}

	names := func(includeGroups, recursive bool) string {
		var out []string
		for l, err := range panel.Layers(includeGroups, recursive) {
			if err != nil {
				log.Fatal(err)
			}
			out = append(out, l.Name())
		}
		return strings.Join(out, " ")
	}

	fmt.Println(names(false, true))
	fmt.Println(names(true, true))
	fmt.Println(names(false, false))
	// Output:
	// Sky Ground Char Glow
	// BG Sky Ground Char FX Glow
	// Char
}

// ExampleLibrary_Resolve turns an element reference into a project-relative path.
func ExampleLibrary_Resolve() {
	p, err := sboard.Load(strings.NewReader(testutils.SampleProject))
	if err != nil {
		log.Fatal(err)
	}

	el, err := p.Library().Resolve(domain.ElementRef{CategoryID: "4", Name: "char_01"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(el.Path())
	// Output:
	// ./elements/char/char_01.tvg
}
