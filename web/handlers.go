package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	bookshelf "github.com/Suiper34/virtual-bookshelf-web"
	"github.com/Suiper34/virtual-bookshelf-web/forms"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	csrf "github.com/utrack/gin-csrf"
	"go.uber.org/zap"
)

const (
	messageDoesNotExist   = "That book does not exist."
	messageDuplicateTitle = "A book with this title already exists."
)

type handlers struct {
	store   Store
	log     *zap.Logger
	metrics *metrics
}

// page renders a template with the data every page needs: pending flash
// messages, the CSRF token and the request id.
func (h *handlers) page(c *gin.Context, status int, name string, data gin.H) {
	data["Flashes"] = h.popFlashes(c)
	data["CSRF"] = csrf.GetToken(c)
	data["RequestID"] = requestID(c)
	c.HTML(status, name, data)
}

func (h *handlers) errorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":    status,
		"Message":   message,
		"RequestID": requestID(c),
	})
}

// internalError logs the cause and renders a page that only shows the request id.
func (h *handlers) internalError(c *gin.Context, err error) {
	h.log.Error("Internal server error",
		zap.Error(err),
		zap.String("requestID", requestID(c)),
		zap.String("path", c.Request.URL.Path),
	)
	h.errorPage(c, http.StatusInternalServerError, "The server had an internal error. Please mention the request id when contacting support.")
}

func parseID(c *gin.Context) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// redirectHome sends the browser back to the list. POSTs are answered with
// 303 so that the browser follows up with a GET.
func redirectHome(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlers) list(c *gin.Context) {
	books, err := h.store.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}
	h.page(c, http.StatusOK, "index.html", gin.H{
		"Books": books,
	})
}

func (h *handlers) addForm(c *gin.Context) {
	h.page(c, http.StatusOK, "add.html", gin.H{
		"Form":   forms.AddBook{},
		"Errors": forms.Errors(nil),
	})
}

func (h *handlers) add(c *gin.Context) {
	var form forms.AddBook
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		h.errorPage(c, http.StatusBadRequest, "The form could not be read.")
		return
	}
	if errs := form.Validate(); errs.Any() {
		h.metrics.operation(operationAdd, outcomeInvalid)
		h.page(c, http.StatusOK, "add.html", gin.H{
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	err := h.store.Add(c.Request.Context(), form.Book())
	var dupErr bookshelf.ErrDuplicateTitle
	switch {
	case errors.As(err, &dupErr):
		h.metrics.operation(operationAdd, outcomeDuplicate)
		h.log.Info("Rejected duplicate title", zap.String("requestID", requestID(c)), zap.String("title", dupErr.Title))
		h.page(c, http.StatusOK, "add.html", gin.H{
			"Form":      form,
			"Errors":    forms.Errors{"title": messageDuplicateTitle},
			"Duplicate": true,
		})
		return
	case errors.Is(err, bookshelf.ErrInvalidBook):
		h.metrics.operation(operationAdd, outcomeInvalid)
		h.log.Warn("Database rejected book", zap.String("requestID", requestID(c)), zap.Error(err))
		h.page(c, http.StatusOK, "add.html", gin.H{
			"Form":   form,
			"Errors": forms.Errors{"": "The book could not be saved, please check the values."},
		})
		return
	case err != nil:
		h.metrics.operation(operationAdd, outcomeError)
		h.internalError(c, err)
		return
	}

	h.metrics.operation(operationAdd, outcomeOK)
	h.log.Info("Added book", zap.String("requestID", requestID(c)), zap.String("title", form.Title))
	h.addFlash(c, flashSuccess, fmt.Sprintf("Added %q to the bookshelf.", form.Title))
	redirectHome(c)
}

func (h *handlers) editRatingForm(c *gin.Context) {
	book, ok := h.getBook(c)
	if !ok {
		return
	}
	h.page(c, http.StatusOK, "edit.html", gin.H{
		"Book":   book,
		"Form":   forms.NewEditRating(book),
		"Errors": forms.Errors(nil),
	})
}

func (h *handlers) editRating(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.metrics.operation(operationEditRating, outcomeNotFound)
		h.addFlash(c, flashWarning, messageDoesNotExist)
		redirectHome(c)
		return
	}
	var form forms.EditRating
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		h.errorPage(c, http.StatusBadRequest, "The form could not be read.")
		return
	}
	if errs := form.Validate(); errs.Any() {
		h.metrics.operation(operationEditRating, outcomeInvalid)
		book, ok := h.getBook(c)
		if !ok {
			return
		}
		h.page(c, http.StatusOK, "edit.html", gin.H{
			"Book":   book,
			"Form":   form,
			"Errors": errs,
		})
		return
	}

	err := h.store.UpdateRating(c.Request.Context(), id, form.Value())
	var notFound bookshelf.ErrNotFound
	switch {
	case errors.As(err, &notFound):
		h.metrics.operation(operationEditRating, outcomeNotFound)
		h.addFlash(c, flashWarning, messageDoesNotExist)
		redirectHome(c)
		return
	case err != nil:
		h.metrics.operation(operationEditRating, outcomeError)
		h.internalError(c, err)
		return
	}

	h.metrics.operation(operationEditRating, outcomeOK)
	h.log.Info("Updated rating", zap.String("requestID", requestID(c)), zap.Int64("id", id), zap.Float64("rating", form.Value()))
	h.addFlash(c, flashSuccess, "Rating updated.")
	redirectHome(c)
}

func (h *handlers) deleteConfirm(c *gin.Context) {
	book, ok := h.getBook(c)
	if !ok {
		return
	}
	h.page(c, http.StatusOK, "delete.html", gin.H{
		"Book": book,
	})
}

func (h *handlers) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.metrics.operation(operationDelete, outcomeNotFound)
		h.addFlash(c, flashDanger, messageDoesNotExist)
		redirectHome(c)
		return
	}
	err := h.store.Delete(c.Request.Context(), id)
	var notFound bookshelf.ErrNotFound
	switch {
	case errors.As(err, &notFound):
		h.metrics.operation(operationDelete, outcomeNotFound)
		h.addFlash(c, flashDanger, messageDoesNotExist)
		redirectHome(c)
		return
	case err != nil:
		h.metrics.operation(operationDelete, outcomeError)
		h.internalError(c, err)
		return
	}

	h.metrics.operation(operationDelete, outcomeOK)
	h.log.Info("Deleted book", zap.String("requestID", requestID(c)), zap.Int64("id", id))
	h.addFlash(c, flashSuccess, "Book deleted.")
	redirectHome(c)
}

// getBook loads the book named in the path. If it can't be found, a warning
// is flashed, the browser is sent back to the list and ok is false.
func (h *handlers) getBook(c *gin.Context) (book bookshelf.Book, ok bool) {
	id, ok := parseID(c)
	if !ok {
		h.addFlash(c, flashWarning, messageDoesNotExist)
		redirectHome(c)
		return book, false
	}
	book, ok, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, err)
		return book, false
	}
	if !ok {
		h.addFlash(c, flashWarning, messageDoesNotExist)
		redirectHome(c)
		return book, false
	}
	return book, true
}
