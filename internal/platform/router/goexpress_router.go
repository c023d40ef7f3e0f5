package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type middleware = func(next http.Handler) http.Handler

// goexpressRouter adapts goexpress to Router.
type goexpressRouter struct {
	mux *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

func NewGoexpressRouter() Router {
	return &goexpressRouter{mux: goexpress.New()}
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Use appends a middleware that wraps every route registered afterwards.
func (r *goexpressRouter) Use(mw middleware) {
	r.mux.Use(mw)
}

func (r *goexpressRouter) Get(pattern string, h http.HandlerFunc, mws ...middleware) {
	r.mux.Get(pattern, h, mws...)
}

func (r *goexpressRouter) Post(pattern string, h http.HandlerFunc, mws ...middleware) {
	r.mux.Post(pattern, h, mws...)
}

func (r *goexpressRouter) Put(pattern string, h http.HandlerFunc, mws ...middleware) {
	r.mux.Put(pattern, h, mws...)
}

func (r *goexpressRouter) Patch(pattern string, h http.HandlerFunc, mws ...middleware) {
	r.mux.Patch(pattern, h, mws...)
}

func (r *goexpressRouter) Delete(pattern string, h http.HandlerFunc, mws ...middleware) {
	r.mux.Delete(pattern, h, mws...)
}

func (r *goexpressRouter) Options(pattern string, h http.HandlerFunc, mws ...middleware) {
	r.mux.Options(pattern, h, mws...)
}

// Group registers the routes added by fn under prefix on the same mux.
// The group inherits the parent's middlewares followed by mws.
func (r *goexpressRouter) Group(prefix string, fn func(r Router), mws ...middleware) {
	sub := goexpress.New()
	sub.SetPrefix(prefix)
	sub.SetMux(r.mux.Mux())

	inherited := append([]middleware{}, r.mux.Middlewares()...)
	sub.SetMiddlewares(append(inherited, mws...))

	fn(&goexpressRouter{mux: sub})
}
