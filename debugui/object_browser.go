package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/stage2d/stage"
)

type objectRow struct {
	scene      string
	index      int
	handle     stage.Handle
	name       string
	tag        string
	components []string
	dangling   bool
}

// ObjectBrowser lists every object reachable through the scene registry and
// lets the user select one for the inspector. Dangling handles are shown,
// not hidden: they are exactly what the window is for.
type ObjectBrowser struct {
	filterText string
	selected   stage.Handle
}

// Render draws the browser window.
func (ob *ObjectBrowser) Render(world *stage.World, registry *stage.SceneRegistry) {
	if !imgui.BeginV("Object Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &ob.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ob.filterText = ""
	}

	rows := ob.collectRows(world, registry)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ObjectTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Scene")
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Tag")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, row := range rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%s[%d]", row.scene, row.index))

			imgui.TableNextColumn()
			isSelected := ob.selected == row.handle
			label := fmt.Sprintf("%d", row.handle)
			if imgui.SelectableBoolV(label, isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ob.selected = row.handle
			}

			imgui.TableNextColumn()
			if row.dangling {
				imgui.Text("<dangling>")
			} else {
				imgui.Text(row.name)
			}

			imgui.TableNextColumn()
			imgui.Text(row.tag)

			imgui.TableNextColumn()
			imgui.Text(strings.Join(row.components, ", "))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Total: %d objects", len(rows)))
	imgui.End()
}

// Selected returns the handle picked in the browser, or zero.
func (ob *ObjectBrowser) Selected() stage.Handle {
	return ob.selected
}

func (ob *ObjectBrowser) collectRows(world *stage.World, registry *stage.SceneRegistry) []objectRow {
	var rows []objectRow
	filter := strings.ToLower(ob.filterText)

	for _, sceneName := range registry.Names() {
		scene, err := registry.Get(sceneName)
		if err != nil {
			continue
		}
		for index, h := range scene.Handles() {
			row := objectRow{scene: sceneName, index: index, handle: h}

			obj, err := world.Get(h)
			if err != nil {
				row.dangling = true
			} else {
				row.name = obj.Name()
				row.tag = obj.Tag()
				for _, c := range obj.Components() {
					row.components = append(row.components, c.Name())
				}
			}

			if filter != "" && !rowMatches(row, filter) {
				continue
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func rowMatches(row objectRow, filter string) bool {
	if strings.Contains(strings.ToLower(row.name), filter) ||
		strings.Contains(strings.ToLower(row.tag), filter) ||
		strings.Contains(strings.ToLower(row.scene), filter) {
		return true
	}
	for _, c := range row.components {
		if strings.Contains(strings.ToLower(c), filter) {
			return true
		}
	}
	return false
}
