package helper

import (
	"context"
	"fmt"
	"io"
	"log"
	"pizzeria_kassa/config"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const productImageFolder = "pizzeria/products"

// InitCloudinary returns nil when no credentials are configured.
func InitCloudinary() *cloudinary.Cloudinary {
	name := config.Config("CLOUDINARY_CLOUD_NAME")
	if name == "" {
		log.Println("CLOUDINARY_CLOUD_NAME not set, product image upload disabled")
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

// UploadProductImage stores r as the picture of a product and returns its URL and public id.
func UploadProductImage(ctx context.Context, cld *cloudinary.Cloudinary, productID uint, r io.Reader) (string, string, error) {
	publicID := fmt.Sprintf("product_%d_%d", productID, time.Now().UnixNano())
	res, err := cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       productImageFolder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	if res.Error.Message != "" {
		return "", "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return res.SecureURL, res.PublicID, nil
}

func DestroyImage(cld *cloudinary.Cloudinary, publicID string) {
	if cld == nil || publicID == "" {
		return
	}
	if _, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID}); err != nil {
		log.Printf("cloudinary destroy %s: %v", publicID, err)
	}
}
