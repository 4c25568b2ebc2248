package sboard

import (
	"iter"

	"github.com/aretw0/sboard/internal/library"
	"github.com/aretw0/sboard/pkg/domain"
)

// Library is the project-wide asset library.
type Library struct {
	p *Project
	r *library.Resolver
}

// Project returns the owning project.
func (lib Library) Project() *Project { return lib.p }

// Categories yields the element categories in document order.
func (lib Library) Categories() iter.Seq2[LibraryCategory, error] {
	return func(yield func(LibraryCategory, error) bool) {
		for _, c := range lib.r.Categories() {
			if !yield(LibraryCategory{lib: lib, c: c}, nil) {
				return
			}
		}
	}
}

// Category looks a category up by id.
func (lib Library) Category(uid string) (LibraryCategory, error) {
	c, err := lib.r.Category(uid)
	if err != nil {
		return LibraryCategory{}, err
	}
	return LibraryCategory{lib: lib, c: c}, nil
}

// Elements yields every element of every category.
func (lib Library) Elements() iter.Seq2[LibraryElement, error] {
	return func(yield func(LibraryElement, error) bool) {
		for c := range lib.Categories() {
			for el, err := range c.Elements() {
				if !yield(el, err) || err != nil {
					return
				}
			}
		}
	}
}

// Resolve finds the element a reference points to.
func (lib Library) Resolve(ref domain.ElementRef) (LibraryElement, error) {
	el, err := lib.r.Resolve(ref)
	if err != nil {
		return LibraryElement{}, err
	}
	return LibraryElement{cat: LibraryCategory{lib: lib, c: el.Category}, el: el}, nil
}

// LibraryCategory is a folder of elements sharing a file type.
type LibraryCategory struct {
	lib Library
	c   *library.Category
}

// UID returns the category id.
func (c LibraryCategory) UID() string { return c.c.UID }

// Name returns the category name.
func (c LibraryCategory) Name() string { return c.c.Name }

// Folder returns the element folder.
func (c LibraryCategory) Folder() string { return c.c.Folder }

// RootFolder returns the root folder.
func (c LibraryCategory) RootFolder() string { return c.c.RootFolder }

// Extension returns the file extension of the category's elements.
func (c LibraryCategory) Extension() string { return c.c.Extension() }

// Equal reports whether both views wrap the same category.
func (c LibraryCategory) Equal(o LibraryCategory) bool {
	return c.lib.p == o.lib.p && c.c.Source == o.c.Source
}

// Elements yields the category's elements in document order.
func (c LibraryCategory) Elements() iter.Seq2[LibraryElement, error] {
	return func(yield func(LibraryElement, error) bool) {
		els, err := c.c.Elements()
		if err != nil {
			yield(LibraryElement{}, err)
			return
		}
		for _, el := range els {
			if !yield(LibraryElement{cat: c, el: el}, nil) {
				return
			}
		}
	}
}

// LibraryElement is a single asset file.
type LibraryElement struct {
	cat LibraryCategory
	el  library.Element
}

// Name returns the element name.
func (e LibraryElement) Name() string { return e.el.Name }

// Path returns the project-relative file path of the element.
func (e LibraryElement) Path() string { return e.el.Path() }

// Ref returns the reference resolving to this element.
func (e LibraryElement) Ref() domain.ElementRef { return e.el.Ref() }

// Category returns the owning category.
func (e LibraryElement) Category() LibraryCategory { return e.cat }

// Equal reports whether both views wrap the same element.
func (e LibraryElement) Equal(o LibraryElement) bool {
	return e.cat.Equal(o.cat) && e.el.Source == o.el.Source
}
