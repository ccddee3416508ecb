package pdfgen

import "github.com/docstream/pdfgen/object"

// AddBookmark creates an outline entry pointing at a page. A nil page means
// the most recently added page. Parent is the object number of an existing
// bookmark, or negative for a top-level entry. The new bookmark's object
// number is returned for use as a later parent.
func (d *Document) AddBookmark(page *Page, parent int, name string) (int, error) {
	pageObj := page
	var dest *object.Object
	if pageObj != nil {
		dest = pageObj.obj
	} else {
		dest = d.registry.Last(object.KindPage)
	}
	if dest == nil {
		return -1, d.errorf(ErrInvalidArgument, "Unable to add bookmark, no pages available")
	}

	// The outline singleton comes into being with the first bookmark.
	if d.registry.First(object.KindOutline) == nil {
		d.registry.Add(object.KindOutline, nil)
	}

	bm := &object.Bookmark{
		Title: truncate(name, 63),
		Page:  dest,
	}
	obj := d.registry.Add(object.KindBookmark, bm)
	if obj == nil {
		return -1, d.errorf(ErrInternal, "Object table full")
	}

	if parent >= 0 {
		parentObj := d.registry.Get(parent)
		if parentObj == nil || parentObj.Kind != object.KindBookmark {
			d.registry.Remove(obj)
			return -1, d.errorf(ErrInvalidArgument, "Invalid parent bookmark %d", parent)
		}
		bm.Parent = parentObj
		parentData := parentObj.Payload.(*object.Bookmark)
		parentData.Children = append(parentData.Children, obj)
	}

	return obj.Index, nil
}
