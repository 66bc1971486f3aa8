package dashboard

// indexPage is the branded landing page: logo header, phone login, and the
// two tabbed tables fed by the login endpoint.
const indexPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>MishTee-Magic Customer App</title>
<link rel="stylesheet" href="/assets/style.css">
</head>
<body>
<div class="dashboard-container">
  <div style="width:100%; text-align:center; padding-top: 20px; padding-bottom: 10px;">
    <img src="/assets/logo.png" alt="MishTee-Magic Logo" style="max-height:120px;"/>
    <h2 style="margin-top: 10px; letter-spacing: 0.15em; text-transform: uppercase;">
      [Purity and Health]
    </h2>
  </div>

  <div style="text-align:center;">
    <label for="phone">Customer Login (Phone Number)</label>
    <input id="phone" type="text" placeholder="Enter registered phone (starts with 9...)">
    <button id="login">Login</button>
  </div>

  <p id="greeting-area">Welcome to MishTee-Magic! Please log in with your phone number.</p>

  <h3>My Order History</h3>
  <table id="order-history"></table>

  <h3>Trending Today</h3>
  <table id="trending"></table>
</div>

<script>
function renderTable(el, table) {
  var html = "<tr>";
  table.columns.forEach(function (c) { html += "<th>" + c + "</th>"; });
  html += "</tr>";
  table.rows.forEach(function (row) {
    html += "<tr>";
    table.columns.forEach(function (c) {
      var v = row[c];
      html += "<td>" + (v === null || v === undefined ? "" : v) + "</td>";
    });
    html += "</tr>";
  });
  el.innerHTML = html;
}

document.getElementById("login").addEventListener("click", function () {
  fetch("/api/v1/dashboard/login", {
    method: "POST",
    headers: { "Content-Type": "application/json" },
    body: JSON.stringify({ phone: document.getElementById("phone").value })
  })
    .then(function (resp) {
      if (!resp.ok) { throw new Error("login failed: " + resp.status); }
      return resp.json();
    })
    .then(function (data) {
      document.getElementById("greeting-area").textContent = data.greeting;
      renderTable(document.getElementById("order-history"), data.order_history);
      renderTable(document.getElementById("trending"), data.trending);
    })
    .catch(function (err) {
      document.getElementById("greeting-area").textContent = String(err);
    });
});
</script>
</body>
</html>
`
