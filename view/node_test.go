package view

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNode(t *testing.T) {
	Convey("Node", t, func() {
		root := NewNode(Element, "root")

		Convey("Classes", func() {
			root.AddClass("a b")
			root.AddClass("b c")
			So(root.Classes(), ShouldResemble, []string{"a", "b", "c"})

			root.RemoveClass("a c d")
			So(root.Classes(), ShouldResemble, []string{"b"})
			So(root.HasClass("b"), ShouldBeTrue)
			So(root.HasClass("a"), ShouldBeFalse)
		})

		Convey("InsertFirst should put the child before existing ones", func() {
			a, b := NewNode(Controls, "a"), NewNode(Video, "b")
			root.AppendChild(a)
			root.InsertFirst(b)

			So(root.Children(), ShouldResemble, []*Node{b, a})
			So(root.FirstChild(), ShouldEqual, b)
			So(b.Parent(), ShouldEqual, root)
		})

		Convey("Inserting an attached node should move it", func() {
			other := NewNode(Element, "other")
			child := NewNode(Element, "child")
			other.AppendChild(child)
			root.AppendChild(child)

			So(other.Children(), ShouldBeEmpty)
			So(child.Parent(), ShouldEqual, root)
		})

		Convey("Detach should only succeed once", func() {
			child := NewNode(Element, "child")
			root.AppendChild(child)

			So(child.Detach(), ShouldBeTrue)
			So(child.Detach(), ShouldBeFalse)
			So(root.Children(), ShouldBeEmpty)
		})

		Convey("Find should search the subtree", func() {
			doc := NewDocument()
			doc.Body.AppendChild(root)
			leaf := NewNode(Element, "leaf")
			root.AppendChild(NewNode(Element, "mid"))
			root.Find("mid").AppendChild(leaf)

			So(doc.FindByID("leaf"), ShouldEqual, leaf)
			So(doc.FindByID("missing"), ShouldBeNil)
			So(doc.FindByID(""), ShouldBeNil)
		})

		Convey("Text nodes are not elements", func() {
			So(NewNode(Text, "").IsElement(), ShouldBeFalse)
			So(root.IsElement(), ShouldBeTrue)
			var nilNode *Node
			So(nilNode.IsElement(), ShouldBeFalse)
		})
	})
}
