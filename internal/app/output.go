package app

import (
	"errors"

	"github.com/Sadvi2004/CodeForge/internal/engine/buffer"
	"github.com/Sadvi2004/CodeForge/internal/event/events"
	"github.com/Sadvi2004/CodeForge/internal/preview"
	"github.com/Sadvi2004/CodeForge/internal/project"
)

// RenderPreview renders the three buffers and hands the document to the
// preview sink. Sink failures are logged, not returned: a broken preview
// must never block editing.
func (app *Application) RenderPreview() {
	if !app.previewEnabled {
		return
	}

	doc := preview.Render(
		app.editors[buffer.Markup].Text(),
		app.editors[buffer.Style].Text(),
		app.editors[buffer.Script].Text(),
	)
	if err := app.preview.Show(doc); err != nil {
		app.logger.WithComponent("preview").Warn("%v", NewOperationError("preview", "", err))
		return
	}
	publish(app, events.TopicPreviewRendered, events.PreviewRendered{Size: len(doc)})
}

// ExportProject writes the project archive and reports the outcome as a
// notice. The result is returned for callers that want the path.
func (app *Application) ExportProject() (project.Result, error) {
	res, err := app.exporter.Export(
		app.editors[buffer.Markup].Text(),
		app.editors[buffer.Style].Text(),
		app.editors[buffer.Script].Text(),
	)

	switch {
	case errors.Is(err, project.ErrNothingToExport):
		app.Notify(MsgNothingToExport, events.SeverityWarn)
		return res, err
	case err != nil:
		opErr := NewOperationError("export", app.exporter.Name, err)
		app.logger.WithComponent("export").Error("%v", opErr)
		app.Notify("Export failed: "+err.Error(), events.SeverityError)
		return res, opErr
	}

	app.logger.WithComponent("export").
		WithFields(map[string]any{"path": res.Path, "size": res.Size}).
		Info("archive written")
	publish(app, events.TopicExportCompleted, events.ExportCompleted{
		Name:    res.Path,
		Size:    res.Size,
		Entries: res.Entries,
	})
	app.Notify(MsgExported, events.SeverityInfo)
	return res, nil
}
