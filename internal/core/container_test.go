package core

import "testing"

func testTemplate() Template {
	return Template{
		Name: "test",
		Roles: []RoleSpec{
			{Name: "status", Kind: KindText},
			{Name: "cell", Kind: KindButton, Count: 9, Columns: 3},
			{Name: "board", Kind: KindSurface, Width: 4, Height: 2},
		},
	}
}

func TestContainerExposesRoles(t *testing.T) {
	c := NewContainer(testTemplate())

	if !c.Has("status") || !c.Has("cell") {
		t.Fatal("container should expose declared roles")
	}
	if got := len(c.Group("cell")); got != 9 {
		t.Errorf("len(Group(cell)) = %d, want 9", got)
	}
	if got := len(c.Elements()); got != 11 {
		t.Errorf("len(Elements()) = %d, want 11", got)
	}
	if c.At("cell", 4).Index() != 4 {
		t.Errorf("At(cell, 4).Index() = %d", c.At("cell", 4).Index())
	}
	if c.Get("board").Surface() == nil {
		t.Error("surface role should carry a screen")
	}
}

func TestContainerMissingRolesAreNil(t *testing.T) {
	c := NewContainer(testTemplate().Without("status"))

	if c.Has("status") {
		t.Fatal("status should be dropped")
	}
	el := c.Get("status")
	if el != nil {
		t.Fatal("missing role should return nil")
	}

	before := c.Revision()
	el.SetText("ignored")
	el.AddClass("x")
	el.SetDisabled(true)
	el.Draw(func(*Screen) { t.Error("draw on nil element must not run") })
	if el.Text() != "" || el.HasClass("x") || el.Disabled() {
		t.Error("nil element should read as zero values")
	}
	if c.Revision() != before {
		t.Error("writes to a missing element must not count as mutations")
	}
	if c.At("cell", 99) != nil || c.At("cell", -1) != nil {
		t.Error("out-of-range index should return nil")
	}
}

func TestContainerRevisionTracksMutations(t *testing.T) {
	c := NewContainer(testTemplate())
	r0 := c.Revision()

	c.Get("status").SetText("hi")
	c.At("cell", 0).AddClass("winner")
	c.Get("board").Draw(func(s *Screen) { s.Set(0, 0, '@', ColorGreen) })

	if got := c.Revision() - r0; got != 3 {
		t.Errorf("revision advanced by %d, want 3", got)
	}
}

func TestCloneFactoryIsolatesContainers(t *testing.T) {
	var f ContainerFactory = CloneFactory{}
	a := f.NewContainer(testTemplate())
	b := f.NewContainer(testTemplate())

	if a.ID() == b.ID() {
		t.Fatal("containers should have distinct IDs")
	}
	a.At("cell", 0).SetText("X")
	if b.At("cell", 0).Text() != "" {
		t.Error("mutating one container leaked into another")
	}
}

func TestElementClasses(t *testing.T) {
	c := NewContainer(testTemplate())
	el := c.At("cell", 2)

	el.AddClass("flipped", "matched")
	if got := el.Classes(); len(got) != 2 || got[0] != "flipped" || got[1] != "matched" {
		t.Errorf("Classes() = %v", got)
	}
	el.RemoveClass("flipped")
	if el.HasClass("flipped") || !el.HasClass("matched") {
		t.Error("RemoveClass should only drop the named class")
	}
	el.SetClasses("active")
	if got := el.Classes(); len(got) != 1 || got[0] != "active" {
		t.Errorf("SetClasses should replace, got %v", got)
	}
}
