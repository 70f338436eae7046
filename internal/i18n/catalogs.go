package i18n

// catalogs holds the message catalogs keyed by locale. The "en" catalog is
// the complete reference set; other locales may be partial and fall back.
var catalogs = map[string]map[string]string{
	"en": {
		"invalid_request_body":          "Invalid request body",
		"validation_failed":             "Validation failed",
		"email_in_use":                  "Email is already in use!",
		"phone_taken":                   "Phone number is already taken by another user.",
		"invalid_credentials":           "Invalid credentials",
		"register_success":              "User registered successfully",
		"authorization_required":        "Authorization header is required",
		"invalid_or_expired_token":      "Invalid or expired token",
		"admin_required":                "Admin access required",
		"not_authorized":                "Not authorized to perform this action",
		"user_not_found":                "User not found",
		"category_not_found":            "Category not found",
		"category_added":                "Category added successfully",
		"category_updated":              "Category updated successfully",
		"category_deleted":              "Category deleted successfully",
		"product_not_found":             "Product is not available!",
		"product_added":                 "Product added successfully",
		"product_updated":               "Product updated successfully",
		"product_deleted":               "Product deleted successfully",
		"product_has_orders":            "Product has existing orders and cannot be deleted",
		"product_image_add_success":     "Product image added successfully",
		"product_images_not_found":      "Product image not found",
		"cart_empty":                    "No Items are available in cart.",
		"added_to_cart":                 "Product added to cart",
		"cart_updated":                  "Cart updated",
		"removed_from_cart":             "Product removed from cart",
		"decreased_cart_quantity":       "Decreased product quantity in cart",
		"product_not_found_in_cart":     "Product not found in cart",
		"order_not_found":               "Order not found",
		"insufficient_stock":            "Insufficient stock for product %s",
		"stock_changed":                 "Stock changed during checkout, please try again",
		"invalid_order_status":          "Invalid status",
		"invalid_payment_status":        "Invalid payment status",
		"order_status_update_success":   "Order status updated successfully",
		"payment_status_update_success": "Payment status updated successfully",
		"rating_valid_range_error":      "Rating must be between 1 and 5",
		"not_allowed_for_review":        "Only buyers of this product can review it",
		"review_rating_add_success":     "Review added successfully",
		"review_rating_updated_success": "Review updated successfully",
		"profile_updated":               "Profile updated successfully",
		"password_updated":              "Password updated successfully",
		"old_password_incorrect":        "Old password is incorrect",
		"password_reset_sent":           "Password reset email sent successfully",
		"password_reset_success":        "Password has been reset successfully",
		"invalid_reset_token":           "Invalid or expired token",
	},
	"hi": {
		"invalid_credentials":       "अमान्य क्रेडेंशियल",
		"register_success":          "उपयोगकर्ता सफलतापूर्वक पंजीकृत",
		"cart_empty":                "कार्ट में कोई आइटम उपलब्ध नहीं है।",
		"added_to_cart":             "उत्पाद कार्ट में जोड़ा गया",
		"removed_from_cart":         "उत्पाद कार्ट से हटाया गया",
		"product_not_found":         "उत्पाद उपलब्ध नहीं है!",
		"order_not_found":           "ऑर्डर नहीं मिला",
		"insufficient_stock":        "उत्पाद %s के लिए अपर्याप्त स्टॉक",
		"user_not_found":            "उपयोगकर्ता नहीं मिला",
		"admin_required":            "व्यवस्थापक पहुंच आवश्यक",
		"rating_valid_range_error":  "रेटिंग 1 और 5 के बीच होनी चाहिए",
		"review_rating_add_success": "समीक्षा सफलतापूर्वक जोड़ी गई",
	},
}
