package main

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.Use(corsMiddleware())
	api := r.Group("", userIDMiddleware())
	api.GET("/item/search", searchItemHandler)
	api.GET("/item", listItemHandler)
	api.POST("/item", createItemHandler)
	api.PUT("/item/:id", renameItemHandler)
	api.DELETE("/item/:id", deleteItemHandler)
	api.GET("/transaksi/pemasukan", totalPemasukanHandler)
	api.GET("/transaksi/pengeluaran", totalPengeluaranHandler)
	api.GET("/transaksi/hutang/list", listHutangHandler)
	api.GET("/transaksi/hutang", ringkasanHutangHandler)
	api.GET("/transaksi/summary/detail", ringkasanBulananHandler)
	api.GET("/transaksi/summary", ringkasanPeriodeHandler)
	api.GET("/transaksi", listTransaksiHandler)
	api.POST("/transaksi", createTransaksiHandler)
	api.GET("/transaksi/:id", getTransaksiHandler)
	api.PUT("/transaksi/:id", updateTransaksiHandler)
	api.DELETE("/transaksi/:id", deleteTransaksiHandler)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-user-id, content-type")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// userIDMiddleware extracts the opaque user identifier supplied by the
// calling application. Its authenticity is the caller's problem, not ours.
func userIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "x-user-id header required"})
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func userIDFrom(c *gin.Context) string {
	return c.GetString("userID")
}

// respondError maps error kinds to HTTP statuses; anything unclassified is a
// store failure and logged server-side.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

type itemPayload struct {
	Nama string `json:"nama"`
}

func searchItemHandler(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	suggestions, err := SearchItems(userIDFrom(c), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, suggestions)
}

func listItemHandler(c *gin.Context) {
	items, err := ListItems(userIDFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, items)
}

func createItemHandler(c *gin.Context) {
	var req itemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := CreateItem(userIDFrom(c), req.Nama)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, item)
}

func renameItemHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item tidak ditemukan"})
		return
	}
	var req itemPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := RenameItem(userIDFrom(c), id, req.Nama)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, item)
}

func deleteItemHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item tidak ditemukan"})
		return
	}
	if err := DeleteItem(userIDFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item berhasil dihapus"})
}

func totalPemasukanHandler(c *gin.Context) {
	total, err := TotalPemasukan(userIDFrom(c), queryInt(c, "tahun", 0), queryInt(c, "bulan", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, total)
}

func totalPengeluaranHandler(c *gin.Context) {
	total, err := TotalPengeluaran(userIDFrom(c), queryInt(c, "tahun", 0), queryInt(c, "bulan", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, total)
}

func ringkasanHutangHandler(c *gin.Context) {
	summary, err := HitungRingkasanHutang(userIDFrom(c), queryInt(c, "tahun", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, summary)
}

func listHutangHandler(c *gin.Context) {
	records, pg, err := ListHutang(userIDFrom(c), queryInt(c, "tahun", 0), queryInt(c, "page", 0), queryInt(c, "size", 10))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records, "pagination": pg})
}

func ringkasanPeriodeHandler(c *gin.Context) {
	summary, err := HitungRingkasanPeriode(userIDFrom(c),
		queryInt(c, "tahun", 0), queryInt(c, "bulan", 0), queryInt(c, "hari", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, summary)
}

func ringkasanBulananHandler(c *gin.Context) {
	summary, err := HitungRingkasanBulanan(userIDFrom(c), queryInt(c, "tahun", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, summary)
}

func listTransaksiHandler(c *gin.Context) {
	filter := ListFilter{
		Tahun: queryInt(c, "tahun", 0),
		Bulan: queryInt(c, "bulan", 0),
		Hari:  queryInt(c, "hari", 0),
		Page:  queryInt(c, "page", 0),
		Size:  queryInt(c, "size", 10),
	}
	records, pg, err := ListTransaksi(userIDFrom(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": records, "pagination": pg})
}

func createTransaksiHandler(c *gin.Context) {
	var req TransaksiPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trx, err := CreateTransaksi(userIDFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, trx)
}

func getTransaksiHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaksi tidak ditemukan"})
		return
	}
	trx, err := GetTransaksi(userIDFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, trx)
}

func updateTransaksiHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaksi tidak ditemukan"})
		return
	}
	var req TransaksiPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	trx, err := UpdateTransaksi(userIDFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, trx)
}

func deleteTransaksiHandler(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaksi tidak ditemukan"})
		return
	}
	if err := DeleteTransaksi(userIDFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Transaksi berhasil dihapus"})
}
