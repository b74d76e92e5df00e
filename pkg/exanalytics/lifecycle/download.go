package lifecycle

import (
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics"
	"github.com/ukaji3/exanalytics-go/pkg/exanalytics/export"
)

// Download notifications.
const (
	MsgDownloaded        = "Chart downloaded as PNG"
	MsgDownloadFailed    = "Failed to download chart"
	MsgNoCanvas          = "Chart not found for download"
	MsgPDFComingSoon     = "PDF download feature coming soon"
	MsgPDFDownloadFailed = "Failed to download chart as PDF"
)

// Download writes the 2D chart of view into dir as a PNG named after the
// chart. 3D scenes and placeholders cannot be downloaded.
func Download(view exanalytics.View, dir string, notify Notifier) (string, error) {
	if view.Chart == nil || view.Placeholder != nil {
		notify.Error(MsgNoCanvas)
		return "", export.ErrNoCanvas
	}
	path, err := export.WriteFile(dir, view.Name, view.Chart, export.FormatPNG)
	if err != nil {
		notify.Error(MsgDownloadFailed)
		return "", err
	}
	notify.Success(MsgDownloaded)
	return path, nil
}

// DownloadPDF is not available yet.
func DownloadPDF(view exanalytics.View, notify Notifier) error {
	notify.Info(MsgPDFComingSoon)
	return export.ErrPDFNotImplemented
}
