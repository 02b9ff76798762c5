package helper

import (
	"bytes"
	"context"
	"log"
	"time"

	"ticket_server/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func initCloudinary() *cloudinary.Cloudinary {
	name := config.Config("CLOUDINARY_CLOUD_NAME")
	if name == "" {
		return nil
	}
	cld, err := cloudinary.NewFromParams(
		name,
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("Cloudinary init failed: %v", err)
		return nil
	}
	return cld
}

// UploadQRImage mirrors the rendered symbol to cloudinary. A no-op when the
// CLOUDINARY_* variables are unset; the local file and the ticket row stay
// the source of truth either way.
func UploadQRImage(ticketID string, png []byte) {
	cld := initCloudinary()
	if cld == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := cld.Upload.Upload(ctx, bytes.NewReader(png), uploader.UploadParams{
		PublicID: "tickets/" + ticketID,
		Folder:   config.ConfigDefault("CLOUDINARY_FOLDER", "qr-codes"),
	})
	if err != nil {
		log.Printf("Cloudinary upload failed for %s: %v", ticketID, err)
	}
}
