package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var landingPageHTML = `<!DOCTYPE html>
<html lang="az">
<head>
<meta charset="UTF-8" />
<meta name="viewport" content="width=device-width, initial-scale=1.0" />
<title>AzerGuest</title>
<style>
body { font-family: Arial, sans-serif; margin: 0; background: #f4f1ea; color: #222; }
header { padding: 48px 20px; text-align: center; background: linear-gradient(135deg,#0f7a5c,#1d4e89); color: #fff; }
header form { margin-top: 16px; }
header input { padding: 10px; margin: 4px; border: none; border-radius: 4px; width: 160px; }
button { padding: 10px 20px; border: none; border-radius: 4px; cursor: pointer; background: #f2b134; color: #222; }
main { max-width: 1100px; margin: 0 auto; padding: 24px; display: grid; grid-template-columns: repeat(auto-fill,minmax(240px,1fr)); gap: 16px; }
.card { background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 16px rgba(0,0,0,0.08); }
.card img { width: 100%; height: 150px; object-fit: cover; background: #ddd; }
.card div { padding: 12px; }
.meta { font-size: 13px; color: #666; }
footer { text-align: center; padding: 20px; font-size: 14px; color: #666; }
</style>
</head>
<body>
<header>
  <h1>AzerGuest</h1>
  <p>Discover and book places across Azerbaijan.</p>
  <form onsubmit="return search(event)">
    <input name="from" placeholder="From region" />
    <input name="to" placeholder="To region" />
    <button type="submit">Search</button>
  </form>
</header>
<main id="places"></main>
<footer>API documentation is available at <a href="/swagger/index.html">/swagger</a></footer>
<script>
function render(places) {
  const root = document.getElementById('places');
  root.innerHTML = '';
  if (!places.length) {
    root.textContent = 'No places found.';
    return;
  }
  for (const p of places) {
    const card = document.createElement('div');
    card.className = 'card';
    const img = document.createElement('img');
    if (p.image) img.src = p.image;
    img.alt = p.name;
    const body = document.createElement('div');
    const title = document.createElement('h3');
    title.textContent = p.name;
    const meta = document.createElement('p');
    meta.className = 'meta';
    meta.textContent = (p.region || '') + ' · ' + p.category + ' · ' + p.price + ' AZN · ★ ' + p.rating;
    body.append(title, meta);
    card.append(img, body);
    root.append(card);
  }
}
async function load(url) {
  const response = await fetch(url);
  const data = await response.json();
  render(data.success ? data.places : []);
}
function search(event) {
  event.preventDefault();
  const params = new URLSearchParams(new FormData(event.target));
  load('/api/search?' + params.toString());
  return false;
}
load('/api/places/top');
</script>
</body>
</html>`

func RegisterPages(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPageHTML)
	})
}
