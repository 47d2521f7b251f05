package models

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type AuthResponse struct {
	Token   string     `json:"token"`
	Refresh string     `json:"refresh"`
	User    PublicUser `json:"user"`
}

type CreateBlogPostRequest struct {
	Title         string     `json:"title" validate:"required,max=200"`
	Excerpt       string     `json:"excerpt" validate:"max=500"`
	Content       string     `json:"content" validate:"required"`
	FeaturedImage string     `json:"featured_image"`
	Status        PostStatus `json:"status"`
}

type UpdateBlogPostRequest struct {
	Title         *string     `json:"title" validate:"omitempty,max=200"`
	Excerpt       *string     `json:"excerpt" validate:"omitempty,max=500"`
	Content       *string     `json:"content"`
	FeaturedImage *string     `json:"featured_image"`
	Status        *PostStatus `json:"status"`
}

type CreateGalleryImageRequest struct {
	Src          string          `json:"src" validate:"required"`
	Alt          string          `json:"alt" validate:"required,max=200"`
	Caption      string          `json:"caption"`
	Category     GalleryCategory `json:"category"`
	DisplayOrder *int            `json:"display_order"`
}

type UpdateGalleryImageRequest struct {
	Src          *string          `json:"src"`
	Alt          *string          `json:"alt" validate:"omitempty,max=200"`
	Caption      *string          `json:"caption"`
	Category     *GalleryCategory `json:"category"`
	DisplayOrder *int             `json:"display_order"`
}

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
	Phone   string `json:"phone" validate:"max=20"`
}

type UpdateMessageStatusRequest struct {
	Status MessageStatus `json:"status" validate:"required"`
}

type SubscribeRequest struct {
	Email string `json:"email" validate:"required"`
}

type BlogListParams struct {
	Status    string `form:"status"`
	AuthorID  uint   `form:"author"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

type GalleryListParams struct {
	Category  string `form:"category"`
	Search    string `form:"search"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

type ContactListParams struct {
	Status string `form:"status"`
	Search string `form:"search"`
}
